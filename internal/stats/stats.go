// Package stats contains typing metrics and result rendering.
package stats

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/cats/internal/model"
)

// Accuracy returns the percentage of typed words that match the source word
// at the same position. An empty text counts as a single empty word.
func Accuracy(typed, source string) float64 {
	typedWords := strings.Fields(typed)
	sourceWords := strings.Fields(source)
	if len(typedWords) == 0 {
		typedWords = []string{""}
	}
	if len(sourceWords) == 0 {
		sourceWords = []string{""}
	}
	correct := 0
	n := min(len(typedWords), len(sourceWords))
	for i := 0; i < n; i++ {
		if typedWords[i] == sourceWords[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(typedWords)) * 100.0
}

// WPM returns words per minute, counting five characters as a word.
// It panics when elapsed is not positive.
func WPM(typed string, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		panic("elapsed time must be positive")
	}
	return float64(utf8.RuneCountInString(typed)) / 5.0 / elapsed.Minutes()
}

// Score builds a Result for a typed attempt.
func Score(typed, source string, elapsed time.Duration) model.Result {
	return model.Result{
		Source:   source,
		Typed:    typed,
		Elapsed:  elapsed,
		WPM:      WPM(typed, elapsed),
		Accuracy: Accuracy(typed, source),
	}
}

// RenderResult prints the speed and accuracy of an attempt.
func RenderResult(w io.Writer, r model.Result) error {
	if _, err := fmt.Fprintln(w, "Nice work!"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Words per minute: %.2f\n", r.WPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy:         %.2f%%\n", r.Accuracy); err != nil {
		return err
	}
	return nil
}

// RenderTimes prints the per-word durations of every player.
func RenderTimes(w io.Writer, players []string, wt model.WordsAndTimes) error {
	headers := append([]string{"Word"}, players...)
	rows := make([][]string, 0, len(wt.Words))
	for i, word := range wt.Words {
		row := []string{word}
		for p := range players {
			cell := ""
			if p < len(wt.Times) && i < len(wt.Times[p]) {
				cell = fmt.Sprintf("%.2fs", wt.Times[p][i])
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	rightAlign := map[int]bool{}
	for i := 1; i < len(headers); i++ {
		rightAlign[i] = true
	}
	return writeLines(w, formatTable(headers, rows, rightAlign))
}

// RenderFastest prints which words each player typed fastest.
func RenderFastest(w io.Writer, players []string, fastest [][]string) error {
	if _, err := fmt.Fprintln(w, "Fastest Words"); err != nil {
		return err
	}
	headers := []string{"Player", "Won", "Words"}
	rows := make([][]string, 0, len(players))
	for i, name := range players {
		var words []string
		if i < len(fastest) {
			words = fastest[i]
		}
		list := strings.Join(words, ", ")
		if list == "" {
			list = "-"
		}
		rows = append(rows, []string{name, fmt.Sprintf("%d", len(words)), list})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true}))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
