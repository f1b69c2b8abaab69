package wordbank

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/verte-zerg/wordle/internal/model"
)

// ErrEmptyBank is returned when no words exist for a requested length.
var ErrEmptyBank = fmt.Errorf("%w: word bank is empty", model.ErrNotFound)

// Lister reads the bank for one word length.
type Lister interface {
	List(length int) ([]string, error)
}

// Source draws random target words. Words already drawn from a length's pool are
// skipped until the pool is exhausted; the pool then resets, still avoiding the
// previous word when there is an alternative.
type Source struct {
	bank Lister
	rnd  *rand.Rand
	used map[int][]string
	last map[int]string
}

// NewSource returns a Source seeded with the current time.
func NewSource(bank Lister) *Source {
	return NewSourceWithRand(bank, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSourceWithRand returns a Source using rnd.
func NewSourceWithRand(bank Lister, rnd *rand.Rand) *Source {
	return &Source{
		bank: bank,
		rnd:  rnd,
		used: map[int][]string{},
		last: map[int]string{},
	}
}

// Draw selects a word of the given length. Bank entries of another length or
// with characters outside A-Z are ignored.
func (s *Source) Draw(length int) (string, error) {
	words, err := s.bank.List(length)
	if err != nil {
		return "", err
	}
	words = lo.Uniq(lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.ToUpper(strings.TrimSpace(w))
		return w, len(w) == length && Valid(w)
	}))
	if len(words) == 0 {
		return "", fmt.Errorf("%w: no %d-letter words", ErrEmptyBank, length)
	}

	used := s.used[length]
	available := lo.Filter(words, func(w string, _ int) bool {
		return !lo.Contains(used, w)
	})
	if len(available) == 0 {
		used = nil
		available = lo.Filter(words, func(w string, _ int) bool {
			return w != s.last[length]
		})
		if len(available) == 0 {
			available = words
		}
	}

	word := available[s.rnd.Intn(len(available))]
	s.used[length] = append(used, word)
	s.last[length] = word
	return word, nil
}
