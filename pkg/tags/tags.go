package tags

import (
	"bufio"
	"cmp"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// Tag is a word with its weight (usually a frequency).
type Tag struct {
	Word   string `json:"word"`
	Weight int    `json:"weight"`
}

// CountOption configures Count.
type CountOption func(*counter)

type counter struct {
	minLength int
	limit     int
	stopWords map[string]struct{}
}

// WithMinLength drops words shorter than n runes.
func WithMinLength(n int) CountOption {
	return func(c *counter) { c.minLength = n }
}

// WithLimit keeps only the n heaviest words. Zero keeps all.
func WithLimit(n int) CountOption {
	return func(c *counter) { c.limit = n }
}

// WithStopWords drops the given words (compared case-insensitively).
func WithStopWords(words ...string) CountOption {
	return func(c *counter) {
		lower := cases.Lower(language.Und)
		for _, w := range words {
			c.stopWords[lower.String(w)] = struct{}{}
		}
	}
}

// Count reads free text and returns word frequencies, heaviest first.
// Words are trimmed of surrounding punctuation and lowercased.
func Count(r io.Reader, opts ...CountOption) ([]Tag, error) {
	c := counter{stopWords: make(map[string]struct{})}
	for _, opt := range opts {
		opt(&c)
	}

	lower := cases.Lower(language.Und)
	counts := make(map[string]int)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		word := strings.TrimFunc(sc.Text(), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		word = lower.String(word)
		if word == "" || utf8.RuneCountInString(word) < c.minLength {
			continue
		}
		if _, stop := c.stopWords[word]; stop {
			continue
		}
		if errors.ValidateWord(word) != nil {
			continue
		}
		counts[word]++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read words")
	}

	return sortTags(counts, c.limit), nil
}

// ParseWeighted reads one "word weight" pair per line. The weight defaults
// to 1 when omitted; blank lines and lines starting with '#' are skipped.
// Repeated words have their weights summed.
func ParseWeighted(r io.Reader) ([]Tag, error) {
	weights := make(map[string]int)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) > 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"line %d: expected \"word weight\", got %d fields", line, len(fields))
		}
		if err := errors.ValidateWord(fields[0]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", line)
		}

		weight := 1
		if len(fields) == 2 {
			w, err := strconv.Atoi(fields[1])
			if err != nil || w < 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"line %d: invalid weight %q", line, fields[1])
			}
			weight = w
		}
		weights[fields[0]] += weight
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read weighted words")
	}

	return sortTags(weights, 0), nil
}

// sortTags orders by weight descending, then word ascending, and truncates
// to limit when limit > 0.
func sortTags(weights map[string]int, limit int) []Tag {
	out := make([]Tag, 0, len(weights))
	for w, n := range weights {
		out = append(out, Tag{Word: w, Weight: n})
	}
	slices.SortFunc(out, func(a, b Tag) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
