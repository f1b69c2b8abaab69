package wordle

import "github.com/verte-zerg/wordle/internal/model"

// Default scoring factors.
const (
	DefaultFactor        = 10
	DefaultPenaltyFactor = 5
)

// Score computes a round score with the default factors.
func Score(wordLength int, outcome model.Outcome, maxAttempts, attemptsUsed int) int {
	return ScoreWith(wordLength, outcome, maxAttempts, attemptsUsed, DefaultFactor, DefaultPenaltyFactor)
}

// ScoreWith computes wordLength*factor + unused attempts*penaltyFactor for a win, 0 for a loss.
func ScoreWith(wordLength int, outcome model.Outcome, maxAttempts, attemptsUsed, factor, penaltyFactor int) int {
	if outcome != model.OutcomeWin {
		return 0
	}
	return wordLength*factor + (maxAttempts-attemptsUsed)*penaltyFactor
}
