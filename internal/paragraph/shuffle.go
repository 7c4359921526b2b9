// Package paragraph loads and selects practice paragraphs.
package paragraph

import (
	"math/rand"
	"time"
)

// Shuffler randomizes paragraph order.
type Shuffler struct {
	rnd *rand.Rand
}

// NewShuffler returns a Shuffler seeded with the current time.
func NewShuffler() *Shuffler {
	return NewShufflerWithSeed(time.Now().UnixNano())
}

// NewShufflerWithSeed returns a Shuffler with a fixed seed.
func NewShufflerWithSeed(seed int64) *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a shuffled copy of paragraphs.
func (s *Shuffler) Shuffle(paragraphs []string) []string {
	out := make([]string, len(paragraphs))
	copy(out, paragraphs)
	s.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
