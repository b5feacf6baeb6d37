package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/rotcoef/internal/errors"
	"github.com/agbru/rotcoef/internal/format"
	"github.com/agbru/rotcoef/internal/orchestration"
	"github.com/agbru/rotcoef/internal/progress"
	"github.com/agbru/rotcoef/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and consolidated progress bar.
type CLIProgressReporter struct {
	Out io.Writer
}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// Consume drives the progress display until the channel closes.
func (r CLIProgressReporter) Consume(_ context.Context, updates <-chan progress.Update, names []string) {
	DisplayProgress(updates, names, r.Out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output: coefficient tables, a sweep summary, and optional file export.
type CLIResultPresenter struct {
	Out io.Writer
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// Present renders the finished sweeps and, when configured, writes the table
// to the output file.
func (p CLIResultPresenter) Present(thetas []float64, results []orchestration.EvaluationResult, opts orchestration.PresentationOptions) error {
	DisplayComparisonTable(thetas, results, opts, p.Out)
	if !opts.Quiet {
		DisplaySweepSummary(results, p.Out)
	}

	if opts.OutputFile != "" {
		if err := WriteTableToFile(opts.OutputFile, thetas, results, opts); err != nil {
			return err
		}
		if !opts.Quiet {
			fmt.Fprintf(p.Out, "\n%s✓ Table saved to: %s%s%s\n",
				ui.ColorSuccess(), ui.ColorPrimary(), opts.OutputFile, ui.ColorReset())
		}
	}
	return nil
}

// CLIColorProvider supplies theme colors to the error reporting helpers.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

// Red returns the active theme's error color.
func (CLIColorProvider) Red() string { return ui.ColorError() }

// Yellow returns the active theme's warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorWarning() }

// Reset returns the formatting reset sequence.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// HandleError reports an evaluation failure and maps it to an exit code.
func HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleEvaluationError(err, duration, out, CLIColorProvider{})
}

// FormatDuration formats a duration for display.
func FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}
