// Package upload provides transports for multiplayer progress reports.
package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/verte-zerg/cats/internal/model"
)

// Func adapts a plain function to an uploader.
type Func func(ctx context.Context, p model.Progress) error

// Upload calls f.
func (f Func) Upload(ctx context.Context, p model.Progress) error {
	return f(ctx, p)
}

// Discard drops every report.
var Discard = Func(func(context.Context, model.Progress) error { return nil })

// Recorder keeps reports in memory in the order they were uploaded.
type Recorder struct {
	mu      sync.Mutex
	reports []model.Progress
}

// Upload appends p.
func (r *Recorder) Upload(_ context.Context, p model.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, p)
	return nil
}

// Reports returns a copy of the recorded reports.
func (r *Recorder) Reports() []model.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Progress, len(r.reports))
	copy(out, r.reports)
	return out
}

// Writer encodes each report as one JSON line.
type Writer struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(w)}
}

// Upload writes p as a JSON line.
func (w *Writer) Upload(ctx context.Context, p model.Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(p); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	return nil
}
