package autocorrect

import (
	"testing"
	"unicode/utf8"

	"github.com/verte-zerg/cats/internal/diff"
)

func TestAutocorrectPicksClosest(t *testing.T) {
	got := Autocorrect("hwllo", []string{"hello", "world"}, diff.FurryFixes, 2)
	if got != "hello" {
		t.Fatalf("expected hello, got %q", got)
	}
}

func TestAutocorrectExactMatchWins(t *testing.T) {
	called := 0
	metric := func(typed, source string, limit int) diff.Score {
		called++
		return diff.Exact(0)
	}
	words := []string{"cat", "bat", "rat"}
	for _, w := range words {
		if got := Autocorrect(w, words, metric, 3); got != w {
			t.Fatalf("expected %q to pass through, got %q", w, got)
		}
	}
	if called != 0 {
		t.Fatalf("expected metric not to be consulted for exact matches, called %d times", called)
	}
}

func TestAutocorrectBeyondLimit(t *testing.T) {
	got := Autocorrect("zzzzz", []string{"hello", "world"}, diff.FurryFixes, 2)
	if got != "zzzzz" {
		t.Fatalf("expected typed word back, got %q", got)
	}
	m := diff.NewMewtations()
	if got := Autocorrect("abcdef", []string{"abc"}, m.Distance, 2); got != "abcdef" {
		t.Fatalf("expected typed word back, got %q", got)
	}
}

func TestAutocorrectTieGoesToEarliest(t *testing.T) {
	words := []string{"bat", "cat", "hat"}
	if got := Autocorrect("rat", words, diff.FurryFixes, 1); got != "bat" {
		t.Fatalf("expected first tied candidate, got %q", got)
	}
	if got := Autocorrect("rat", []string{"hat", "cat"}, diff.FurryFixes, 1); got != "hat" {
		t.Fatalf("expected first tied candidate, got %q", got)
	}
}

func TestAutocorrectUsesMetric(t *testing.T) {
	m := diff.NewMewtations()
	got := Autocorrect("wrod", []string{"word", "wrote", "rod"}, m.Distance, 2)
	if got != "rod" {
		t.Fatalf("expected rod under edit distance, got %q", got)
	}
	if got := Autocorrect("wrod", []string{"word", "wrote", "rod"}, diff.Damerau, 2); got != "word" {
		t.Fatalf("expected word under transposition distance, got %q", got)
	}
	if m.Calls() == 0 {
		t.Fatalf("expected mewtations to be invoked")
	}
}

func TestAutocorrectEmptyList(t *testing.T) {
	if got := Autocorrect("abc", nil, diff.FurryFixes, 3); got != "abc" {
		t.Fatalf("expected typed word for empty list, got %q", got)
	}
}

func TestCorrectLastWord(t *testing.T) {
	c := New([]string{"hello", "world"}, diff.FurryFixes, 2)
	cases := map[string]string{
		"":                 "",
		"hwllo":            "hello",
		"hello wprld":      "hello world",
		"hello wprld ":     "hello wprld ",
		"zzz qqqqqq":       "zzz qqqqqq",
		"hello\u00a0wprld": "hello\u00a0world",
		"hello\u3000wprld": "hello\u3000world",
	}
	for in, want := range cases {
		if got := c.CorrectLastWord(in); got != want {
			t.Fatalf("CorrectLastWord(%q) = %q, want %q", in, got, want)
		}
		if got := c.CorrectLastWord(in); !utf8.ValidString(got) {
			t.Fatalf("CorrectLastWord(%q) produced invalid UTF-8 %q", in, got)
		}
	}
}
