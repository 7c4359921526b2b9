// Package diff provides bounded difference metrics between words.
package diff

import (
	"errors"

	"github.com/antzucaro/matchr"
)

// FinalDiffLimit is the limit used with FinalDiff.
const FinalDiffLimit = 6

// ErrFinalDiffUnimplemented is the panic value raised by FinalDiff.
var ErrFinalDiffUnimplemented = errors.New("final diff is not implemented; provide your own metric")

// FurryFixes counts the positions where typed and source differ, plus the
// difference in their lengths. Only substitutions are considered.
func FurryFixes(typed, source string, limit int) Score {
	if limit < 0 {
		return Exceeded
	}
	t, s := []rune(typed), []rune(source)
	n := min(len(t), len(s))
	mismatches := 0
	for i := 0; i < n; i++ {
		if t[i] == s[i] {
			continue
		}
		mismatches++
		if mismatches > limit {
			return Exceeded
		}
	}
	return bounded(mismatches+abs(len(t)-len(s)), limit)
}

// Mewtations computes the edit distance (insert, delete, substitute) and
// counts the subproblems it evaluates.
type Mewtations struct {
	calls int
}

// NewMewtations returns a Mewtations metric with a zeroed counter.
func NewMewtations() *Mewtations {
	return &Mewtations{}
}

// Calls returns the number of subproblems evaluated since creation or the last Reset.
func (m *Mewtations) Calls() int {
	return m.calls
}

// Reset zeroes the counter.
func (m *Mewtations) Reset() {
	m.calls = 0
}

// Distance implements Metric. Only cells within limit of the diagonal are
// evaluated, and a row whose cells all exceed limit stops the computation.
func (m *Mewtations) Distance(typed, source string, limit int) Score {
	m.calls++
	if limit < 0 {
		return Exceeded
	}
	t, s := []rune(typed), []rune(source)
	if len(t) == 0 || len(s) == 0 {
		return bounded(abs(len(t)-len(s)), limit)
	}
	if abs(len(t)-len(s)) > limit {
		return Exceeded
	}

	// Values are capped at over, which stands for "more than limit".
	over := limit + 1
	prev := make([]int, len(s)+1)
	curr := make([]int, len(s)+1)
	for j := range prev {
		prev[j] = min(j, over)
	}
	for i := 1; i <= len(t); i++ {
		for j := range curr {
			curr[j] = over
		}
		curr[0] = min(i, over)
		rowMin := curr[0]
		lo := max(1, i-limit)
		hi := min(len(s), i+limit)
		for j := lo; j <= hi; j++ {
			m.calls++
			cost := 1
			if t[i-1] == s[j-1] {
				cost = 0
			}
			v := min(prev[j-1]+cost, prev[j]+1, curr[j-1]+1, over)
			curr[j] = v
			rowMin = min(rowMin, v)
		}
		if rowMin > limit {
			return Exceeded
		}
		prev, curr = curr, prev
	}
	return bounded(prev[len(s)], limit)
}

// Damerau computes the edit distance counting an adjacent transposition as
// a single edit.
func Damerau(typed, source string, limit int) Score {
	if limit < 0 {
		return Exceeded
	}
	if abs(len([]rune(typed))-len([]rune(source))) > limit {
		return Exceeded
	}
	return bounded(matchr.DamerauLevenshtein(typed, source), limit)
}

// FinalDiff is a placeholder for a user-supplied metric. It always panics.
func FinalDiff(_, _ string, _ int) Score {
	panic(ErrFinalDiffUnimplemented)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
