// Package wordbank supplies words for rounds and prepares word lists for storage.
package wordbank

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/wordle/internal/model"
)

// ErrInvalidWord is returned for words that cannot go into a bank.
var ErrInvalidWord = fmt.Errorf("%w: word must be %d-%d letters A-Z", model.ErrValidation, model.MinLevel, model.MaxLevel)

// Normalize trims and uppercases word and checks it fits a bank.
func Normalize(word string) (string, error) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if !Valid(word) {
		return "", ErrInvalidWord
	}
	return word, nil
}

// Valid reports whether word is an uppercase ASCII word of a supported length.
func Valid(word string) bool {
	if len(word) < model.MinLevel || len(word) > model.MaxLevel {
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
