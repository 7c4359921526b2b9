// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type cell struct {
	s       string
	width   int
	isSpace bool
}

// styleCells renders every target rune according to what was typed over it.
// Runes typed past the end of the target are appended as mistakes.
func styleCells(target, input []rune) []cell {
	cursor := len(input)
	wordStart, wordEnd := currentWord(target, cursor)

	out := make([]cell, 0, max(len(target), len(input)))
	for i, r := range target {
		shown := r
		style := pendingStyle
		switch {
		case i < len(input) && input[i] == r:
			style = correctStyle
		case i < len(input):
			style = incorrectStyle
			if r == ' ' {
				shown = '•'
			}
		case r != ' ' && i >= wordStart && i < wordEnd:
			style = currentWordStyle
		}
		if i == cursor {
			style = style.Underline(true)
		}
		out = append(out, cell{
			s:       style.Render(string(shown)),
			width:   runewidth.RuneWidth(shown),
			isSpace: r == ' ',
		})
	}
	for _, r := range input[min(len(input), len(target)):] {
		out = append(out, cell{
			s:       incorrectStyle.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isSpace: r == ' ',
		})
	}
	return out
}

// currentWord returns the bounds of the word under cursor, or of the next
// word when cursor sits on a space.
func currentWord(target []rune, cursor int) (int, int) {
	if cursor < 0 || cursor >= len(target) {
		return -1, -1
	}
	start := cursor
	if target[start] == ' ' {
		for start < len(target) && target[start] == ' ' {
			start++
		}
	} else {
		for start > 0 && target[start-1] != ' ' {
			start--
		}
	}
	end := start
	for end < len(target) && target[end] != ' ' {
		end++
	}
	return start, end
}

// wrapCells joins cells into lines no wider than width, breaking at spaces.
// Words wider than a line are split.
func wrapCells(cells []cell, width int) string {
	if width <= 0 {
		return joinCells(cells)
	}
	var out strings.Builder
	lineWidth := 0
	for _, word := range splitWords(cells) {
		if lineWidth > 0 && lineWidth+cellsWidth(word) > width {
			out.WriteByte('\n')
			lineWidth = 0
			for len(word) > 0 && word[0].isSpace {
				word = word[1:]
			}
		}
		for _, c := range word {
			if lineWidth > 0 && lineWidth+c.width > width {
				out.WriteByte('\n')
				lineWidth = 0
			}
			out.WriteString(c.s)
			lineWidth += c.width
		}
	}
	return out.String()
}

// splitWords groups cells so that each group starts at a space (except the first).
func splitWords(cells []cell) [][]cell {
	var words [][]cell
	start := 0
	for i := 1; i < len(cells); i++ {
		if cells[i].isSpace && !cells[i-1].isSpace {
			words = append(words, cells[start:i])
			start = i
		}
	}
	if start < len(cells) {
		words = append(words, cells[start:])
	}
	return words
}

func joinCells(cells []cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.s)
	}
	return b.String()
}

func cellsWidth(cells []cell) int {
	total := 0
	for _, c := range cells {
		total += c.width
	}
	return total
}
