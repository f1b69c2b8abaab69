package wordle

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/wordle/internal/model"
)

// GuessResult reports whether a submitted guess solved the round.
type GuessResult int

// GuessResult values.
const (
	Continue GuessResult = iota
	WordGuessed
)

// Round owns the mutable state of one game.
type Round struct {
	target      string
	maxAttempts int
	guesses     []string
	feedback    []FeedbackRow
	hints       LetterHints
	solved      bool
}

// NewRound starts a round for target, which must be an uppercase A-Z word.
func NewRound(target string, maxAttempts int) (*Round, error) {
	if target == "" || !isUpperASCII(target) {
		return nil, fmt.Errorf("%w: target word %q", model.ErrValidation, target)
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("%w: max attempts must be >= 1", model.ErrValidation)
	}
	return &Round{
		target:      target,
		maxAttempts: maxAttempts,
		hints:       LetterHints{},
	}, nil
}

// Normalize trims and uppercases raw guess input.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Validate checks a normalized guess. Checks run in order: already used, length, characters.
func (r *Round) Validate(word string) error {
	if slices.Contains(r.guesses, word) {
		return ErrAlreadyUsed
	}
	if len([]rune(word)) != len(r.target) {
		return fmt.Errorf("%w: expected %d letters", ErrWrongLength, len(r.target))
	}
	if !isUpperASCII(word) {
		return ErrInvalidCharacter
	}
	return nil
}

// Submit validates and applies a guess.
func (r *Round) Submit(word string) (GuessResult, error) {
	if r.Complete() {
		return Continue, ErrRoundOver
	}
	if err := r.Validate(word); err != nil {
		return Continue, err
	}
	row := Evaluate(r.target, word)
	r.guesses = append(r.guesses, word)
	r.feedback = append(r.feedback, row)
	r.hints.Record(word, row)
	if word == r.target {
		r.solved = true
		return WordGuessed, nil
	}
	return Continue, nil
}

// Complete reports whether the round is won or out of attempts.
func (r *Round) Complete() bool {
	return r.solved || len(r.guesses) >= r.maxAttempts
}

// Outcome returns the result of a completed round. ok is false while the round is in progress.
func (r *Round) Outcome() (outcome model.Outcome, ok bool) {
	if !r.Complete() {
		return "", false
	}
	if r.solved {
		return model.OutcomeWin, true
	}
	return model.OutcomeLoss, true
}

// Score returns the score of a completed round, or 0 while in progress.
func (r *Round) Score() int {
	outcome, ok := r.Outcome()
	if !ok {
		return 0
	}
	return Score(len(r.target), outcome, r.maxAttempts, len(r.guesses))
}

// HistoryRecord builds the persisted record for a completed round.
func (r *Round) HistoryRecord(userID string, now time.Time) (model.HistoryRecord, error) {
	outcome, ok := r.Outcome()
	if !ok {
		return model.HistoryRecord{}, fmt.Errorf("round for %q is still in progress", r.target)
	}
	return model.HistoryRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Word:      r.target,
		Guesses:   len(r.guesses),
		Result:    outcome,
		Score:     r.Score(),
		Timestamp: now.Format(model.TimestampLayout),
	}, nil
}

// Target returns the word being guessed.
func (r *Round) Target() string { return r.target }

// Level returns the word length.
func (r *Round) Level() int { return len(r.target) }

// MaxAttempts returns the attempt budget.
func (r *Round) MaxAttempts() int { return r.maxAttempts }

// AttemptsUsed returns the number of accepted guesses.
func (r *Round) AttemptsUsed() int { return len(r.guesses) }

// Guesses returns accepted guesses in order.
func (r *Round) Guesses() []string { return slices.Clone(r.guesses) }

// Feedback returns one row per accepted guess, in guess order.
func (r *Round) Feedback() []FeedbackRow { return slices.Clone(r.feedback) }

// Hint returns the keyboard hint for a letter.
func (r *Round) Hint(letter rune) (LetterHint, bool) { return r.hints.Lookup(letter) }

func isUpperASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return true
}
