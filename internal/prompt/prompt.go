// Package prompt runs the typing test as a plain line-based dialogue.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/verte-zerg/cats/internal/practice"
	"github.com/verte-zerg/cats/internal/stats"
)

// Run prompts for paragraphs on out and reads attempts from in until the
// user submits an empty line, types q, or paragraphs run out.
func Run(ctx context.Context, session *practice.Session, in io.Reader, out io.Writer, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}
	reader := bufio.NewReader(in)
	for {
		source, ok := session.Current()
		if !ok {
			_, err := fmt.Fprintln(out, session.Exhausted())
			return err
		}
		if _, err := fmt.Fprintf(out, "Type the following paragraph and then press enter/return.\n"+
			"If you only type part of it, you will be scored only on that part.\n\n%s\n\n", source); err != nil {
			return err
		}

		start := now()
		typed, err := readLine(reader)
		if err != nil {
			return err
		}
		if typed == "" {
			_, err := fmt.Fprintln(out, "Goodbye.")
			return err
		}
		if session.Autocorrecting() {
			typed = correctAll(session, typed)
		}
		if _, err := session.Report(ctx, typed); err != nil {
			logErrf("%v\n", err)
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		if err := stats.RenderResult(out, session.Score(typed, now().Sub(start))); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(out, "\nPress enter/return for the next paragraph or type q to quit."); err != nil {
			return err
		}
		next, err := readLine(reader)
		if err != nil {
			return err
		}
		if strings.TrimSpace(next) == "q" {
			return nil
		}
		session.Advance()
	}
}

// readLine returns the next line without its terminator. EOF with no data
// reads as an empty line, which ends the dialogue.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func correctAll(session *practice.Session, typed string) string {
	words := strings.Fields(typed)
	for i, w := range words {
		words[i] = session.CorrectLastWord(w)
	}
	return strings.Join(words, " ")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
