// Package app wires configuration, evaluators, orchestration, and
// presentation into the runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/rotcoef/internal/config"
	"github.com/agbru/rotcoef/internal/logging"
	"github.com/agbru/rotcoef/internal/rodrigues"
	"github.com/agbru/rotcoef/internal/server"
	"github.com/agbru/rotcoef/internal/tui"
	"github.com/agbru/rotcoef/internal/ui"
)

// Application represents a configured rotcoef instance.
type Application struct {
	Config    config.AppConfig
	Factory   rodrigues.EvaluatorFactory
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom EvaluatorFactory.
func WithFactory(f rodrigues.EvaluatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets a custom Logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates an Application by parsing command-line arguments. The factory
// is built from the parsed perturbation steps and series threshold unless one
// was injected.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	availableModes := rodrigues.NewDefaultFactory().List()

	programName := "rotcoef"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableModes)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Factory == nil {
		app.Factory = rodrigues.NewFactory(cfg.H1, cfg.H2, cfg.SeriesThreshold)
	}
	return app, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Logger == nil {
		if a.Config.Verbose {
			a.Logger = logging.NewDefaultLogger()
		} else {
			a.Logger = logging.NewNopLogger()
		}
	}

	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, a.Logger)
		srv.Start()
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				a.Logger.Warn("metrics server shutdown failed", logging.Err(err))
			}
		}()
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runTabulate(ctx, out)
}

// runTUI launches the interactive coefficient explorer.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()

	evaluators, err := evaluatorsForMode(a.Factory, a.Config.Mode)
	if err != nil {
		return configErrorExit(err, a.ErrWriter)
	}
	return tui.Run(ctx, evaluators, a.Config, Version)
}

// IsHelpError checks if the error came from the --help flag.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
