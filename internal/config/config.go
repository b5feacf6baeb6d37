// Package config defines the application configuration and its resolution
// chain: CLI flags take priority over ROTCOEF_* environment variables, which
// take priority over the built-in defaults (matching the original evaluation
// driver: 101 grid points, step 1e-2, hyper-dual steps 1e-10).
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/rotcoef/internal/errors"
)

// EnvPrefix is prepended to every environment variable override key.
const EnvPrefix = "ROTCOEF_"

// Default values for the evaluation grid and the comparison.
const (
	DefaultMode            = "all"
	DefaultPoints          = 101
	DefaultStep            = 1e-2
	DefaultCenter          = 0.0
	DefaultH               = 1e-10
	DefaultSeriesThreshold = 0.25
	DefaultTolerance       = 1e-4
	DefaultPrecision       = 7
	DefaultWidth           = 14
	DefaultTimeout         = time.Minute
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Mode selects the evaluation strategy, or "all" for the comparison run.
	Mode string
	// Points is the number of evaluation grid points.
	Points int
	// Step is the grid spacing.
	Step float64
	// Center is the angle the grid is centered on.
	Center float64
	// H1, H2 are the hyper-dual perturbation steps.
	H1 float64
	H2 float64
	// SeriesThreshold is the series evaluator's switchover angle.
	SeriesThreshold float64
	// Tolerance is the maximum absolute deviation accepted between
	// strategies before the run is reported as a mismatch.
	Tolerance float64
	// Precision is the number of fractional digits in the table cells.
	Precision int
	// Width is the table cell width in characters.
	Width int
	// Timeout bounds the whole evaluation run.
	Timeout time.Duration
	// OutputFile optionally receives a copy of the comparison table.
	OutputFile string
	// MetricsAddr optionally exposes a Prometheus endpoint while running.
	MetricsAddr string

	Quiet   bool
	Verbose bool
	TUI     bool
	NoColor bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not explicitly set, and validates the
// result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for usage and parse errors.
//   - availableModes: The registered evaluator names, for validation and usage.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A parse or validation error (flag.ErrHelp when --help was used).
func ParseConfig(programName string, args []string, errWriter io.Writer, availableModes []string) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	modeHelp := fmt.Sprintf("evaluation mode: %s, or 'all' to compare every strategy",
		strings.Join(availableModes, ", "))
	fs.StringVar(&cfg.Mode, "mode", DefaultMode, modeHelp)
	fs.IntVar(&cfg.Points, "points", DefaultPoints, "number of grid points")
	fs.Float64Var(&cfg.Step, "step", DefaultStep, "grid spacing")
	fs.Float64Var(&cfg.Center, "center", DefaultCenter, "grid center angle")
	fs.Float64Var(&cfg.H1, "h1", DefaultH, "hyper-dual perturbation step (first direction)")
	fs.Float64Var(&cfg.H2, "h2", DefaultH, "hyper-dual perturbation step (second direction)")
	fs.Float64Var(&cfg.SeriesThreshold, "series-threshold", DefaultSeriesThreshold,
		"angle above which the series evaluator defers to the closed forms")
	fs.Float64Var(&cfg.Tolerance, "tolerance", DefaultTolerance,
		"maximum absolute deviation accepted between strategies")
	fs.IntVar(&cfg.Precision, "precision", DefaultPrecision, "fractional digits in table cells")
	fs.IntVar(&cfg.Width, "width", DefaultWidth, "table cell width")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "evaluation timeout")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the comparison table to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for --output")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "",
		"listen address for the Prometheus /metrics endpoint (disabled when empty)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress everything but the table")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for --quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for --verbose")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableModes); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the evaluators cannot work
// with.
func (c AppConfig) Validate(availableModes []string) error {
	if c.Points <= 0 {
		return apperrors.ValidationError{Field: "points", Message: "must be positive"}
	}
	if c.Step <= 0 {
		return apperrors.ValidationError{Field: "step", Message: "must be positive"}
	}
	if c.H1 <= 0 {
		return apperrors.ValidationError{Field: "h1", Message: "must be positive"}
	}
	if c.H2 <= 0 {
		return apperrors.ValidationError{Field: "h2", Message: "must be positive"}
	}
	if c.Tolerance <= 0 {
		return apperrors.ValidationError{Field: "tolerance", Message: "must be positive"}
	}
	if c.Precision < 0 || c.Precision > 17 {
		return apperrors.ValidationError{Field: "precision", Message: "must be between 0 and 17"}
	}
	if c.Width < 0 {
		return apperrors.ValidationError{Field: "width", Message: "must not be negative"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}

	if c.Mode != "all" {
		found := false
		for _, m := range availableModes {
			if m == c.Mode {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown mode %q (available: %s, all)",
				c.Mode, strings.Join(availableModes, ", "))
		}
	}
	return nil
}
