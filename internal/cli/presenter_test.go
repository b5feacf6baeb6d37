package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/rotcoef/internal/errors"
	"github.com/agbru/rotcoef/internal/progress"
	"github.com/agbru/rotcoef/internal/ui"
)

func TestCLIResultPresenterPresent(t *testing.T) {
	original := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(original)
	ui.SetTheme("none")

	thetas, results := testResults()
	path := filepath.Join(t.TempDir(), "out.txt")

	var buf bytes.Buffer
	presenter := CLIResultPresenter{Out: &buf}
	opts := plainOpts()
	opts.OutputFile = path

	if err := presenter.Present(thetas, results, opts); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"mode: series", "Sweep Summary", "Table saved to"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestCLIResultPresenterQuiet(t *testing.T) {
	thetas, results := testResults()

	var buf bytes.Buffer
	presenter := CLIResultPresenter{Out: &buf}
	opts := plainOpts()
	opts.Quiet = true

	if err := presenter.Present(thetas, results, opts); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if strings.Contains(buf.String(), "Sweep Summary") {
		t.Error("quiet mode must suppress the summary")
	}
	if !strings.Contains(buf.String(), "mode: series") {
		t.Error("quiet mode must keep the table")
	}
}

func TestCLIProgressReporterConsume(t *testing.T) {
	updates := make(chan progress.Update, 1)
	updates <- progress.Update{EvaluatorIndex: 0, Value: 1.0}
	close(updates)

	var buf bytes.Buffer
	// Must drain the channel and return.
	CLIProgressReporter{Out: &buf}.Consume(context.Background(), updates, []string{"direct"})
}

func TestHandleError(t *testing.T) {
	original := ui.GetCurrentTheme()
	defer ui.SetCurrentTheme(original)
	ui.SetTheme("none")

	var buf bytes.Buffer
	code := HandleError(context.DeadlineExceeded, time.Second, &buf)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("HandleError(DeadlineExceeded) = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	if !strings.Contains(buf.String(), "timed out") {
		t.Errorf("output missing timeout message: %q", buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(42 * time.Millisecond); got != "42ms" {
		t.Errorf("FormatDuration() = %q, want 42ms", got)
	}
}
