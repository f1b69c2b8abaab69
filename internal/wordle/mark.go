// Package wordle implements the guessing engine: feedback, letter hints, rounds, and scoring.
package wordle

// Mark classifies one letter of a guess.
type Mark int

// Mark values. Untried is used for board cells that have no guess yet.
const (
	Untried Mark = iota
	Absent
	Present
	Exact
)

func (m Mark) String() string {
	switch m {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	default:
		return "untried"
	}
}

// FeedbackRow holds one mark per letter of a guess.
type FeedbackRow []Mark

// Solved reports whether every mark is Exact.
func (f FeedbackRow) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != Exact {
			return false
		}
	}
	return true
}
