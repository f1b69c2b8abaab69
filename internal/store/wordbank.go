package store

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/verte-zerg/wordle/internal/model"
)

// ErrDuplicateWord is returned when adding a word already in its bank.
var ErrDuplicateWord = fmt.Errorf("%w: word", model.ErrDuplicate)

// WordBank keeps one JSON list of uppercase words per word length.
type WordBank struct {
	dir string
}

// NewWordBank returns a word bank rooted at dataDir/word_bank.
func NewWordBank(dataDir string) *WordBank {
	return &WordBank{dir: filepath.Join(dataDir, "word_bank")}
}

// Path returns the file backing the bank for length.
func (b *WordBank) Path(length int) string {
	return filepath.Join(b.dir, fmt.Sprintf("%d_letter_words.json", length))
}

// List returns the uppercase words for length. A missing or corrupt bank is model.ErrNotFound.
func (b *WordBank) List(length int) ([]string, error) {
	var words []string
	exists, err := readJSON(b.Path(length), &words)
	if err != nil {
		return nil, fmt.Errorf("%w: %d-letter word bank: %w", model.ErrNotFound, length, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %d-letter word bank at %s", model.ErrNotFound, length, b.Path(length))
	}
	return lo.Map(words, func(w string, _ int) string { return strings.ToUpper(w) }), nil
}

// Add appends word to the bank for length, creating the bank if needed.
func (b *WordBank) Add(length int, word string) error {
	word = strings.ToUpper(word)
	words, err := b.List(length)
	if err != nil && !isMissing(b.Path(length)) {
		return err
	}
	if slices.Contains(words, word) {
		return fmt.Errorf("%w: %q", ErrDuplicateWord, word)
	}
	return b.Replace(length, append(words, word))
}

// Replace overwrites the bank for length.
func (b *WordBank) Replace(length int, words []string) error {
	if words == nil {
		words = []string{}
	}
	return writeJSON(b.Path(length), words)
}

// Merge adds words not already present and returns how many were added.
func (b *WordBank) Merge(length int, words []string) (int, error) {
	existing, err := b.List(length)
	if err != nil && !isMissing(b.Path(length)) {
		return 0, err
	}
	fresh := lo.Filter(lo.Uniq(words), func(w string, _ int) bool {
		return !slices.Contains(existing, w)
	})
	if len(fresh) == 0 && existing != nil {
		return 0, nil
	}
	if err := b.Replace(length, append(existing, fresh...)); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

// Exists reports whether a bank file for length is present and non-empty.
func (b *WordBank) Exists(length int) bool {
	return !isMissing(b.Path(length))
}

func isMissing(path string) bool {
	var stored []string
	exists, err := readJSON(path, &stored)
	return !exists && err == nil
}

// Levels lists supported word lengths.
func Levels() []int {
	levels := make([]int, 0, model.MaxLevel-model.MinLevel+1)
	for l := model.MinLevel; l <= model.MaxLevel; l++ {
		levels = append(levels, l)
	}
	return levels
}
