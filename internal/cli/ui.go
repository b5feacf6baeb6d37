//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// ProgressRefreshRate is the refresh frequency of the spinner and the
	// progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the character width of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so progress display can be tested
// without driving a real terminal animation.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is a variable so tests can substitute a mock.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SweepState aggregates the per-strategy progress of concurrent grid sweeps
// into a single average for the consolidated progress bar.
type SweepState struct {
	progresses []float64
}

// NewSweepState creates a SweepState tracking the given number of strategies.
func NewSweepState(numEvaluators int) *SweepState {
	return &SweepState{progresses: make([]float64, numEvaluators)}
}

// Update records the progress of one strategy. Out-of-range indexes are
// ignored.
func (ss *SweepState) Update(index int, value float64) {
	if index >= 0 && index < len(ss.progresses) {
		ss.progresses[index] = value
	}
}

// Average returns the mean progress across all tracked strategies, 0 when
// none are tracked.
func (ss *SweepState) Average() float64 {
	if len(ss.progresses) == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ss.progresses {
		total += p
	}
	return total / float64(len(ss.progresses))
}

// progressBar renders a textual progress bar of the given width for a
// normalized progress value.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
