package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/rotcoef/internal/cli"
	apperrors "github.com/agbru/rotcoef/internal/errors"
	"github.com/agbru/rotcoef/internal/orchestration"
	"github.com/agbru/rotcoef/internal/rodrigues"
	"github.com/agbru/rotcoef/internal/ui"
)

// runTabulate orchestrates the CLI evaluation run: build the grid, sweep it
// with the selected strategies, render the tables, and cross-check the
// strategies when all of them ran.
func (a *Application) runTabulate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	evaluators, err := evaluatorsForMode(a.Factory, a.Config.Mode)
	if err != nil {
		return configErrorExit(err, a.ErrWriter)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(evaluators, out)
	}

	var reporter orchestration.ProgressReporter
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
	} else {
		reporter = cli.CLIProgressReporter{Out: out}
	}

	thetas := orchestration.BuildGrid(a.Config.Points, a.Config.Step, a.Config.Center)
	orch := orchestration.NewOrchestrator(a.Logger)

	start := time.Now()
	results, err := orch.EvaluateGrid(ctx, evaluators, thetas, reporter)
	elapsed := time.Since(start)
	if err != nil {
		return cli.HandleError(err, elapsed, out)
	}

	presenter := cli.CLIResultPresenter{Out: out}
	opts := orchestration.PresentationOptions{
		Precision:  a.Config.Precision,
		Width:      a.Config.Width,
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := presenter.Present(thetas, results, opts); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing results: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	if len(evaluators) > 1 {
		if err := orch.AnalyzeComparisonResults(thetas, results, a.Config.Tolerance); err != nil {
			fmt.Fprintf(out, "%sComparison failed: %v%s\n",
				ui.ColorError(), err, ui.ColorReset())
			return apperrors.ExitErrorMismatch
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "%sAll strategies agree within %g on finite values.%s\n",
				ui.ColorSuccess(), a.Config.Tolerance, ui.ColorReset())
		}
	}

	return apperrors.ExitSuccess
}

// evaluatorsForMode resolves the configured mode against the factory.
func evaluatorsForMode(factory rodrigues.EvaluatorFactory, mode string) ([]rodrigues.Evaluator, error) {
	return orchestration.GetEvaluatorsToRun(factory, mode)
}

// configErrorExit reports a configuration error and returns the matching
// exit code.
func configErrorExit(err error, errWriter io.Writer) int {
	fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
	return apperrors.ExitErrorConfig
}
