package wordle

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/wordle/internal/model"
)

// Guess validation errors, all classified as model.ErrValidation.
var (
	ErrAlreadyUsed      = fmt.Errorf("%w: word already used", model.ErrValidation)
	ErrWrongLength      = fmt.Errorf("%w: wrong word length", model.ErrValidation)
	ErrInvalidCharacter = fmt.Errorf("%w: word must contain only letters A-Z", model.ErrValidation)
)

// ErrRoundOver is returned when guessing after the round completed.
var ErrRoundOver = errors.New("round is over")
