// Package practice drives a sequence of typing attempts over paragraphs.
package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/cats/internal/autocorrect"
	"github.com/verte-zerg/cats/internal/model"
	"github.com/verte-zerg/cats/internal/paragraph"
	"github.com/verte-zerg/cats/internal/race"
	"github.com/verte-zerg/cats/internal/stats"
)

// Session hands out matching paragraphs in order and scores attempts.
type Session struct {
	paragraphs []string
	sel        paragraph.Selector
	topics     []string
	index      int

	corrector  *autocorrect.Corrector
	dictionary []string
	newCorr    func(words []string) *autocorrect.Corrector

	uploader race.Uploader
	userID   int
}

// Option configures a Session.
type Option func(*Session)

// WithTopics restricts paragraphs to those about any of topics.
func WithTopics(topics []string) Option {
	return func(s *Session) {
		if len(topics) == 0 {
			return
		}
		s.topics = topics
		s.sel = paragraph.About(topics)
	}
}

// WithAutocorrect enables autocorrection. An empty dictionary means the
// words of the current paragraph are used.
func WithAutocorrect(dictionary []string, newCorrector func(words []string) *autocorrect.Corrector) Option {
	return func(s *Session) {
		s.dictionary = dictionary
		s.newCorr = newCorrector
	}
}

// WithUploader reports progress for userID through up.
func WithUploader(up race.Uploader, userID int) Option {
	return func(s *Session) {
		s.uploader = up
		s.userID = userID
	}
}

// New returns a Session over paragraphs.
func New(paragraphs []string, opts ...Option) *Session {
	s := &Session{paragraphs: paragraphs, sel: paragraph.All}
	for _, opt := range opts {
		opt(s)
	}
	s.refreshCorrector()
	return s
}

// Current returns the paragraph to type, or false when none remain.
func (s *Session) Current() (string, bool) {
	p := paragraph.Pick(s.paragraphs, s.sel, s.index)
	return p, p != ""
}

// Advance moves to the next matching paragraph.
func (s *Session) Advance() {
	s.index++
	s.refreshCorrector()
}

// Exhausted returns the message shown when no paragraph remains.
func (s *Session) Exhausted() string {
	if len(s.topics) == 0 {
		return "No more paragraphs are available."
	}
	return fmt.Sprintf("No more paragraphs about %v are available.", s.topics)
}

// Score scores typed against the current paragraph.
func (s *Session) Score(typed string, elapsed time.Duration) model.Result {
	source, _ := s.Current()
	if elapsed <= 0 {
		elapsed = time.Millisecond
	}
	return stats.Score(typed, source, elapsed)
}

// Autocorrecting reports whether autocorrection is enabled.
func (s *Session) Autocorrecting() bool {
	return s.corrector != nil
}

// CorrectLastWord autocorrects the last word of line when enabled.
func (s *Session) CorrectLastWord(line string) string {
	if s.corrector == nil {
		return line
	}
	return s.corrector.CorrectLastWord(line)
}

// Reporting reports whether progress uploads are enabled.
func (s *Session) Reporting() bool {
	return s.uploader != nil
}

// Report uploads progress on the current paragraph. It is a no-op without an uploader.
func (s *Session) Report(ctx context.Context, typed string) (float64, error) {
	source, _ := s.Current()
	return s.Upload(ctx, typed, source)
}

// Upload uploads progress of typed against source. It does not read the
// paragraph cursor.
func (s *Session) Upload(ctx context.Context, typed, source string) (float64, error) {
	if s.uploader == nil {
		return 0, nil
	}
	return race.ReportProgress(ctx, typed, source, s.userID, s.uploader)
}

func (s *Session) refreshCorrector() {
	if s.newCorr == nil {
		return
	}
	if len(s.dictionary) > 0 {
		if s.corrector == nil {
			s.corrector = s.newCorr(s.dictionary)
		}
		return
	}
	source, ok := s.Current()
	if !ok {
		s.corrector = nil
		return
	}
	s.corrector = s.newCorr(strings.Fields(paragraph.RemovePunctuation(source)))
}
