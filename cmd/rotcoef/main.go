package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/agbru/rotcoef/internal/app"
	apperrors "github.com/agbru/rotcoef/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		// Flag parse errors already print their own diagnostics; validation
		// errors do not.
		var cfgErr apperrors.ConfigError
		var valErr apperrors.ValidationError
		if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
