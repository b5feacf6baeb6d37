// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* and Print* functions write formatted output to an [io.Writer],
//     handling presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/agbru/rotcoef/internal/config"
	"github.com/agbru/rotcoef/internal/format"
	"github.com/agbru/rotcoef/internal/orchestration"
	"github.com/agbru/rotcoef/internal/rodrigues"
	"github.com/agbru/rotcoef/internal/ui"
)

// PrintExecutionConfig displays the evaluation parameters before the sweep
// starts: grid shape, perturbation steps, and runtime environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating %s%d%s angles spaced %s%g%s around %s%g%s with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), cfg.Points, ui.ColorReset(),
		ui.ColorPrimary(), cfg.Step, ui.ColorReset(),
		ui.ColorPrimary(), cfg.Center, ui.ColorReset(),
		ui.ColorWarning(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Hyper-dual steps: h1=%s%g%s, h2=%s%g%s; series switchover at %s%g%s.\n",
		ui.ColorPrimary(), cfg.H1, ui.ColorReset(),
		ui.ColorPrimary(), cfg.H2, ui.ColorReset(),
		ui.ColorPrimary(), cfg.SeriesThreshold, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorPrimary(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorPrimary(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays whether a single strategy or the full
// comparison will run.
func PrintExecutionMode(evaluators []rodrigues.Evaluator, out io.Writer) {
	var modeDesc string
	if len(evaluators) > 1 {
		modeDesc = "Parallel comparison of all strategies"
	} else {
		modeDesc = fmt.Sprintf("Single sweep with the %s%s%s strategy",
			ui.ColorSuccess(), evaluators[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Evaluation ---\n")
}

const cellSeparator = " | "

// FormatComparisonTable renders the coefficient tables for every finished
// sweep: one block per strategy, a theta header row, then the six coefficient
// rows, every cell in fixed-width scientific notation.
func FormatComparisonTable(thetas []float64, results []orchestration.EvaluationResult, opts orchestration.PresentationOptions) string {
	var b strings.Builder
	labelWidth := len("theta")
	ruleLen := labelWidth + len(thetas)*(len(cellSeparator)+opts.Width)

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(&b, "mode: %s failed: %v\n\n", res.Name, res.Err)
			continue
		}

		fmt.Fprintln(&b, strings.Repeat("-", ruleLen))
		fmt.Fprintf(&b, "mode: %s (%s)\n", res.Name, format.FormatExecutionDuration(res.Duration))
		fmt.Fprintln(&b, strings.Repeat("-", ruleLen))

		fmt.Fprintf(&b, "%*s", labelWidth, "theta")
		for _, theta := range thetas {
			b.WriteString(cellSeparator)
			b.WriteString(format.FormatScientific(theta, opts.Precision, opts.Width))
		}
		b.WriteByte('\n')

		for _, row := range res.Rows {
			fmt.Fprintf(&b, "%*s", labelWidth, row.Label)
			for _, v := range row.Values {
				b.WriteString(cellSeparator)
				b.WriteString(format.FormatScientific(v, opts.Precision, opts.Width))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DisplayComparisonTable writes the coefficient tables to out.
func DisplayComparisonTable(thetas []float64, results []orchestration.EvaluationResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprint(out, FormatComparisonTable(thetas, results, opts))
}

// DisplaySweepSummary prints one line per strategy with its duration and
// status, after the tables.
func DisplaySweepSummary(results []orchestration.EvaluationResult, out io.Writer) {
	fmt.Fprintf(out, "--- Sweep Summary ---\n")
	for _, res := range results {
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		if res.Err != nil {
			fmt.Fprintf(out, "%s%-10s%s %s%8s%s   %sfailed: %v%s\n",
				ui.ColorPrimary(), res.Name, ui.ColorReset(),
				ui.ColorWarning(), duration, ui.ColorReset(),
				ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			fmt.Fprintf(out, "%s%-10s%s %s%8s%s   %sok%s\n",
				ui.ColorPrimary(), res.Name, ui.ColorReset(),
				ui.ColorWarning(), duration, ui.ColorReset(),
				ui.ColorSuccess(), ui.ColorReset())
		}
	}
}

// WriteTableToFile writes the comparison table to a file with a small header
// describing the run. Colors never reach the file.
//
// Returns an error when the file or its directory cannot be created.
func WriteTableToFile(path string, thetas []float64, results []orchestration.EvaluationResult, opts orchestration.PresentationOptions) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Rodrigues Coefficient Comparison\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Grid points: %d\n", len(thetas))
	fmt.Fprintf(file, "# Strategies: %d\n", len(results))
	fmt.Fprintf(file, "\n")
	fmt.Fprint(file, FormatComparisonTable(thetas, results, opts))
	return nil
}
