package wordle

// LetterHint is the best-known classification of a letter across a round.
type LetterHint struct {
	Exact   bool
	Present bool
}

// LetterHints accumulates keyboard hints. A letter is present in the map once guessed.
type LetterHints map[rune]LetterHint

// Record folds one evaluated guess into the hints. Exact is never cleared and
// Present is OR-accumulated.
func (h LetterHints) Record(guess string, row FeedbackRow) {
	for i, r := range []rune(guess) {
		hint := h[r]
		if i < len(row) {
			switch row[i] {
			case Exact:
				hint.Exact = true
			case Present:
				hint.Present = true
			}
		}
		h[r] = hint
	}
}

// Lookup returns the hint for r and whether r has been guessed at all.
func (h LetterHints) Lookup(r rune) (LetterHint, bool) {
	hint, ok := h[r]
	return hint, ok
}
