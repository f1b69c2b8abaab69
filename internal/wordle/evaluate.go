package wordle

// consumed replaces target letters that already satisfied a mark.
const consumed rune = 0

// Evaluate marks guess against target using the two-pass Wordle rules.
//
// Pass 1 marks exact matches and consumes those target positions. Pass 2 walks the
// remaining guess letters left to right and marks Present while an unconsumed
// occurrence is left in target, consuming it; everything else is Absent. A repeated
// guess letter is therefore credited at most as many times as it occurs in target.
//
// Both words must be the same length; callers validate before evaluating.
func Evaluate(target, guess string) FeedbackRow {
	remaining := []rune(target)
	guessRunes := []rune(guess)
	row := make(FeedbackRow, len(guessRunes))

	for i, r := range guessRunes {
		if i < len(remaining) && remaining[i] == r {
			row[i] = Exact
			remaining[i] = consumed
		}
	}

	for i, r := range guessRunes {
		if row[i] == Exact {
			continue
		}
		row[i] = Absent
		for j, t := range remaining {
			if t == r {
				row[i] = Present
				remaining[j] = consumed
				break
			}
		}
	}
	return row
}
