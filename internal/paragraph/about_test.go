package paragraph

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestAbout(t *testing.T) {
	sel := About([]string{"dogs", "cats", "hamsters"})
	if !sel("Cute Dogs!") {
		t.Fatalf("expected case and punctuation to be ignored")
	}
	if sel("Cute animals") || sel("dogsled racing!") {
		t.Fatalf("expected whole-word matches only")
	}
	if !sel("Nice pup, cats.") {
		t.Fatalf("expected trailing punctuation to be ignored")
	}
}

func TestAboutRejectsUppercaseSubjects(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for uppercase subject")
		}
	}()
	About([]string{"Dogs"})
}

func TestPick(t *testing.T) {
	ps := []string{"hi", "how are you", "fine"}
	short := func(p string) bool { return len(p) <= 4 }
	cases := []struct {
		sel  Selector
		k    int
		want string
	}{
		{All, 0, "hi"},
		{All, 2, "fine"},
		{All, 3, ""},
		{short, 0, "hi"},
		{short, 1, "fine"},
		{short, 2, ""},
		{All, -1, ""},
	}
	for _, tc := range cases {
		if got := Pick(ps, tc.sel, tc.k); got != tc.want {
			t.Fatalf("Pick(k=%d) = %q, want %q", tc.k, got, tc.want)
		}
	}
}

func TestPickAbout(t *testing.T) {
	ps := []string{"Cute Dogs!", "A dog-lover", "Cats and dogs."}
	sel := About([]string{"dogs"})
	if got := Pick(ps, sel, 1); got != "Cats and dogs." {
		t.Fatalf("unexpected pick: %q", got)
	}
	if got := Pick(ps, sel, 2); got != "" {
		t.Fatalf("expected exhaustion, got %q", got)
	}
}

func TestRemovePunctuation(t *testing.T) {
	if got := RemovePunctuation("  don't, stop!  "); got != "dont stop" {
		t.Fatalf("unexpected result: %q", got)
	}
	if got := RemovePunctuation("naïve café"); got != "naïve café" {
		t.Fatalf("expected non-ASCII letters to survive: %q", got)
	}
}

func TestLoadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paragraphs.txt")
	if err := os.WriteFile(path, []byte("  first line \n\nsecond line\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines, err := LoadLines(path)
	if err != nil {
		t.Fatalf("LoadLines failed: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"first line", "second line"}) {
		t.Fatalf("unexpected lines: %q", lines)
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadLines(empty); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestWords(t *testing.T) {
	got := Words([]string{"Hello, world.", "world peace"})
	want := []string{"Hello", "world", "peace"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	s := NewShufflerWithSeed(1)
	out := s.Shuffle(in)
	if !reflect.DeepEqual(in, []string{"a", "b", "c", "d", "e"}) {
		t.Fatalf("expected input to be left untouched")
	}
	sorted := append([]string(nil), out...)
	sort.Strings(sorted)
	if !reflect.DeepEqual(sorted, in) {
		t.Fatalf("expected a permutation, got %v", out)
	}
	again := NewShufflerWithSeed(1).Shuffle(in)
	if !reflect.DeepEqual(out, again) {
		t.Fatalf("expected the same seed to give the same order")
	}
}
