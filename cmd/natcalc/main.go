// Command natcalc is an arbitrary-precision calculator for natural numbers.
// It supports a one-shot CLI mode, a verification mode that cross-checks the
// engine against math/big, and an HTTP server mode.
package main

import (
	"context"
	"os"

	"github.com/agbru/natcalc/internal/app"
	apperrors "github.com/agbru/natcalc/internal/errors"
)

func main() {
	os.Exit(run())
}

// run contains the application logic, separated from main so that deferred
// cleanups execute before the process exits.
func run() int {
	// --version works in any flag position and short-circuits everything else
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}

	return application.Run(context.Background(), os.Stdout)
}
