// Package orchestration coordinates concurrent grid sweeps across the
// registered evaluation strategies and compares their results. It owns no
// presentation: progress and results are handed to interfaces the CLI and TUI
// implement.
package orchestration

import (
	"context"
	"time"

	"github.com/agbru/rotcoef/internal/progress"
)

// Row is one coefficient row of an evaluation result: the coefficient label
// and its value at every grid angle.
type Row struct {
	Label  string
	Values []float64
}

// EvaluationResult is the outcome of one strategy's sweep over the grid.
type EvaluationResult struct {
	// Name is the strategy identifier (e.g. "hyperdual").
	Name string
	// Rows holds the six coefficient rows in display order.
	Rows []Row
	// Duration is the wall-clock time the sweep took.
	Duration time.Duration
	// Err is the sweep failure, nil on success.
	Err error
}

// PresentationOptions carries the display settings the presenter needs.
type PresentationOptions struct {
	Precision  int
	Width      int
	OutputFile string
	Quiet      bool
	Verbose    bool
}

// ProgressReporter consumes progress updates while a sweep runs. Consume must
// drain the channel until it closes, even if it displays nothing.
type ProgressReporter interface {
	Consume(ctx context.Context, updates <-chan progress.Update, names []string)
}

// ProgressReporterFunc adapts a function to the ProgressReporter interface.
type ProgressReporterFunc func(ctx context.Context, updates <-chan progress.Update, names []string)

// Consume calls the wrapped function.
func (f ProgressReporterFunc) Consume(ctx context.Context, updates <-chan progress.Update, names []string) {
	f(ctx, updates, names)
}

// NullProgressReporter drains updates without displaying anything; used in
// quiet mode and in tests.
type NullProgressReporter struct{}

// Consume discards every update until the channel closes.
func (NullProgressReporter) Consume(_ context.Context, updates <-chan progress.Update, _ []string) {
	for range updates {
	}
}

// ResultPresenter renders the finished sweeps to the user.
type ResultPresenter interface {
	Present(thetas []float64, results []EvaluationResult, opts PresentationOptions) error
}
