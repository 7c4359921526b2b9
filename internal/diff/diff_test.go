package diff

import (
	"errors"
	"testing"

	"github.com/antzucaro/matchr"
)

func TestFurryFixes(t *testing.T) {
	cases := []struct {
		typed, source string
		limit         int
		want          Score
	}{
		{"ab", "ab", 3, Exact(0)},
		{"nice", "rice", 10, Exact(1)},
		{"range", "rungs", 10, Exact(2)},
		{"pill", "pillage", 10, Exact(3)},
		{"roses", "arose", 10, Exact(5)},
		{"rose", "hello", 2, Exceeded},
		{"", "abc", 5, Exact(3)},
		{"ab", "abcdef", 2, Exceeded},
	}
	for _, tc := range cases {
		if got := FurryFixes(tc.typed, tc.source, tc.limit); got != tc.want {
			t.Fatalf("FurryFixes(%q, %q, %d) = %v, want %v", tc.typed, tc.source, tc.limit, got, tc.want)
		}
	}
}

func TestMewtationsDistance(t *testing.T) {
	cases := []struct {
		typed, source string
		limit         int
		want          Score
	}{
		{"ab", "abc", 3, Exact(1)},
		{"cats", "scat", 10, Exact(2)},
		{"purng", "purring", 10, Exact(2)},
		{"ckiteus", "kittens", 10, Exact(3)},
		{"kitten", "sitting", 2, Exceeded},
		{"kitten", "sitting", 3, Exact(3)},
		{"", "", 0, Exact(0)},
		{"a", "", 0, Exceeded},
	}
	for _, tc := range cases {
		m := NewMewtations()
		if got := m.Distance(tc.typed, tc.source, tc.limit); got != tc.want {
			t.Fatalf("Distance(%q, %q, %d) = %v, want %v", tc.typed, tc.source, tc.limit, got, tc.want)
		}
	}
}

func TestMewtationsMatchesLevenshtein(t *testing.T) {
	words := []string{"", "a", "ab", "ba", "abc", "hello", "hwllo", "world", "kitten", "sitting", "resume"}
	m := NewMewtations()
	for _, a := range words {
		for _, b := range words {
			want := matchr.Levenshtein(a, b)
			got, ok := m.Distance(a, b, 100).Value()
			if !ok || got != want {
				t.Fatalf("Distance(%q, %q) = %d (ok=%v), want %d", a, b, got, ok, want)
			}
		}
	}
}

func TestMewtationsCounter(t *testing.T) {
	m := NewMewtations()
	if m.Calls() != 0 {
		t.Fatalf("expected zero calls, got %d", m.Calls())
	}
	m.Distance("hello", "hallo", 2)
	first := m.Calls()
	if first == 0 {
		t.Fatalf("expected calls to be counted")
	}
	m.Distance("hello", "hallo", 2)
	if m.Calls() != 2*first {
		t.Fatalf("expected %d calls, got %d", 2*first, m.Calls())
	}
	m.Reset()
	if m.Calls() != 0 {
		t.Fatalf("expected reset counter, got %d", m.Calls())
	}
	m.Distance("x", "y", -1)
	if m.Calls() != 1 {
		t.Fatalf("expected 1 call for negative limit, got %d", m.Calls())
	}
}

func TestMewtationsLimitPrunes(t *testing.T) {
	narrow := NewMewtations()
	wide := NewMewtations()
	narrow.Distance("abcdefghijklmnop", "ponmlkjihgfedcba", 1)
	wide.Distance("abcdefghijklmnop", "ponmlkjihgfedcba", 16)
	if narrow.Calls() >= wide.Calls() {
		t.Fatalf("expected a small limit to evaluate fewer subproblems: %d >= %d", narrow.Calls(), wide.Calls())
	}
}

func TestDamerau(t *testing.T) {
	if got := Damerau("ab", "ba", 1); got != Exact(1) {
		t.Fatalf("expected transposition to cost 1, got %v", got)
	}
	if got := Damerau("ab", "ba", 0); got != Exceeded {
		t.Fatalf("expected exceeded, got %v", got)
	}
	if got := Damerau("abc", "abcdef", 2); got != Exceeded {
		t.Fatalf("expected length gap to exceed, got %v", got)
	}
}

func TestMetricIdentityAndNegativeLimit(t *testing.T) {
	metrics := map[string]Metric{
		NameFurry:      FurryFixes,
		NameMewtations: NewMewtations().Distance,
		NameDamerau:    Damerau,
	}
	for name, metric := range metrics {
		for _, s := range []string{"", "a", "hello", "naïve"} {
			for _, limit := range []int{0, 1, 5} {
				if got := metric(s, s, limit); got != Exact(0) {
					t.Fatalf("%s(%q, %q, %d) = %v, want 0", name, s, s, limit, got)
				}
			}
			if got := metric(s, "other", -1); got != Exceeded {
				t.Fatalf("%s(%q, other, -1) = %v, want exceeded", name, s, got)
			}
		}
	}
}

func TestFinalDiffPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrFinalDiffUnimplemented) {
			t.Fatalf("expected ErrFinalDiffUnimplemented panic, got %v", r)
		}
	}()
	FinalDiff("a", "b", FinalDiffLimit)
}

func TestScoreOrdering(t *testing.T) {
	if !Exact(1).Less(Exact(2)) || Exact(2).Less(Exact(1)) {
		t.Fatalf("exact scores should order by value")
	}
	if !Exact(1000).Less(Exceeded) || Exceeded.Less(Exact(0)) || Exceeded.Less(Exceeded) {
		t.Fatalf("exceeded should sort after every exact score")
	}
	if !Exact(3).Exceeds(2) || Exact(2).Exceeds(2) || !Exceeded.Exceeds(100) {
		t.Fatalf("unexpected Exceeds results")
	}
	if !Exceeded.IsExceeded() || Exact(0).IsExceeded() || (Score{}).IsExceeded() {
		t.Fatalf("unexpected IsExceeded results")
	}
	if got := FurryFixes("abc", "abcdef", 2); !got.IsExceeded() {
		t.Fatalf("length gap beyond the limit should be exceeded, got %v", got)
	}
	if Exceeded.String() != "inf" || Exact(4).String() != "4" {
		t.Fatalf("unexpected String output")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		if _, err := Lookup(name); err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
	}
	if _, err := Lookup("bogus"); err == nil {
		t.Fatalf("expected error for unknown metric")
	}
}
