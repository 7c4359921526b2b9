// Package diff provides bounded difference metrics between words.
package diff

import "strconv"

// Metric scores how far typed is from source. Scores larger than limit are
// reported as Exceeded, and a negative limit always yields Exceeded.
type Metric func(typed, source string, limit int) Score

// Score is a bounded distance: either an exact value or Exceeded.
// The zero value is an exact distance of 0.
type Score struct {
	value    int
	exceeded bool
}

// Exceeded marks a distance beyond the limit.
var Exceeded = Score{exceeded: true}

// Exact returns a score holding distance d.
func Exact(d int) Score {
	return Score{value: d}
}

// bounded returns Exact(d) when d fits the limit and Exceeded otherwise.
func bounded(d, limit int) Score {
	if d > limit {
		return Exceeded
	}
	return Exact(d)
}

// Value returns the exact distance and whether the score is within its limit.
func (s Score) Value() (int, bool) {
	if s.exceeded {
		return 0, false
	}
	return s.value, true
}

// IsExceeded reports whether the score is Exceeded.
func (s Score) IsExceeded() bool {
	return s.exceeded
}

// Exceeds reports whether the score is greater than limit.
func (s Score) Exceeds(limit int) bool {
	return s.exceeded || s.value > limit
}

// Less orders exact scores by value and places Exceeded after all of them.
func (s Score) Less(other Score) bool {
	if s.exceeded {
		return false
	}
	if other.exceeded {
		return true
	}
	return s.value < other.value
}

// String implements fmt.Stringer.
func (s Score) String() string {
	if s.exceeded {
		return "inf"
	}
	return strconv.Itoa(s.value)
}
