package wordbank

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

//go:embed defaults/*.txt
var defaultLists embed.FS

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return ParseWords(file)
}

// ParseWords reads one word per line, skipping blank lines.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// Bucket normalizes words and groups them by length, dropping invalid words and duplicates.
// skipped counts the dropped entries.
func Bucket(words []string) (buckets map[int][]string, skipped int) {
	valid := make([]string, 0, len(words))
	for _, w := range words {
		norm, err := Normalize(w)
		if err != nil {
			skipped++
			continue
		}
		valid = append(valid, norm)
	}
	unique := lo.Uniq(valid)
	skipped += len(valid) - len(unique)
	return lo.GroupBy(unique, func(w string) int { return len(w) }), skipped
}

// Defaults returns the embedded starter bank for a word length.
func Defaults(length int) ([]string, error) {
	data, err := defaultLists.ReadFile(fmt.Sprintf("defaults/%d.txt", length))
	if err != nil {
		return nil, fmt.Errorf("no default words for length %d: %w", length, err)
	}
	words, err := ParseWords(strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}
	buckets, _ := Bucket(words)
	return buckets[length], nil
}
