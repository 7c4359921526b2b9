// Package paragraph loads and selects practice paragraphs.
package paragraph

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLines reads one entry per non-empty line from the provided file path.
func LoadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only paragraph file.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	return lines, nil
}

// Pick returns the k-th paragraph accepted by sel, counting from zero.
// It returns an empty string when fewer than k+1 paragraphs match.
func Pick(paragraphs []string, sel Selector, k int) string {
	if k < 0 {
		return ""
	}
	for _, p := range paragraphs {
		if !sel(p) {
			continue
		}
		if k == 0 {
			return p
		}
		k--
	}
	return ""
}

// Words returns the distinct words of the paragraphs, in order of first use,
// with punctuation removed.
func Words(paragraphs []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range paragraphs {
		for _, w := range strings.Fields(RemovePunctuation(p)) {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
