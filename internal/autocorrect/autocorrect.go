// Package autocorrect picks the closest known word for a mistyped word.
package autocorrect

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/cats/internal/diff"
)

// Autocorrect returns the word in wordList closest to typed under metric.
// A typed word already in wordList is returned as is, ties go to the earliest
// candidate, and typed is returned when the best score exceeds limit.
func Autocorrect(typed string, wordList []string, metric diff.Metric, limit int) string {
	for _, w := range wordList {
		if w == typed {
			return typed
		}
	}
	best := ""
	bestScore := diff.Exceeded
	found := false
	for _, candidate := range wordList {
		score := metric(typed, candidate, limit)
		if !found || score.Less(bestScore) {
			best = candidate
			bestScore = score
			found = true
		}
	}
	if !found || bestScore.Exceeds(limit) {
		return typed
	}
	return best
}

// Corrector binds a word list, metric and limit.
type Corrector struct {
	words  []string
	metric diff.Metric
	limit  int
}

// New returns a Corrector over words.
func New(words []string, metric diff.Metric, limit int) *Corrector {
	return &Corrector{words: words, metric: metric, limit: limit}
}

// Correct autocorrects a single word.
func (c *Corrector) Correct(typed string) string {
	return Autocorrect(typed, c.words, c.metric, c.limit)
}

// CorrectLastWord autocorrects the final word of line, leaving everything
// before it untouched. Lines ending in whitespace are returned unchanged.
func (c *Corrector) CorrectLastWord(line string) string {
	if line == "" {
		return line
	}
	cut := 0
	if idx := strings.LastIndexFunc(line, unicode.IsSpace); idx >= 0 {
		_, size := utf8.DecodeRuneInString(line[idx:])
		cut = idx + size
	}
	last := line[cut:]
	if last == "" {
		return line
	}
	return line[:cut] + c.Correct(last)
}
