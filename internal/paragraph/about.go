// Package paragraph loads and selects practice paragraphs.
package paragraph

import (
	"fmt"
	"strings"
)

// Selector returns true when a paragraph should be kept.
type Selector func(string) bool

// All accepts every paragraph.
func All(string) bool { return true }

// About returns a Selector matching paragraphs that contain any of the
// subject words, ignoring case and punctuation. Subjects must be lowercase.
func About(subjects []string) Selector {
	for _, s := range subjects {
		if strings.ToLower(s) != s {
			panic(fmt.Sprintf("subjects should be lowercase: %q", s))
		}
	}
	set := make(map[string]struct{}, len(subjects))
	for _, s := range subjects {
		set[s] = struct{}{}
	}
	return func(p string) bool {
		for _, w := range strings.Fields(strings.ToLower(RemovePunctuation(p))) {
			if _, ok := set[w]; ok {
				return true
			}
		}
		return false
	}
}

// RemovePunctuation strips surrounding whitespace and every ASCII punctuation character.
func RemovePunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if isASCIIPunct(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}
