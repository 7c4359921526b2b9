package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Word", "Ana", "Bo"}
	rows := [][]string{
		{"a", "2.00s", "1.00s"},
		{"quick", "13.50s", "3.00s"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	want := []string{
		"Word     Ana    Bo",
		"----- ------ -----",
		"a      2.00s 1.00s",
		"quick 13.50s 3.00s",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Word", "N"}, [][]string{{"日本", "1"}}, nil)
	if lines[2] != "日本 1" {
		t.Fatalf("expected wide runes to count double: %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected no lines, got %q", lines)
	}
}
