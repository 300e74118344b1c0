package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sync"

	"github.com/agbru/natcalc/internal/cli"
	"github.com/agbru/natcalc/internal/config"
	apperrors "github.com/agbru/natcalc/internal/errors"
	"github.com/agbru/natcalc/internal/orchestration"
	"github.com/agbru/natcalc/internal/server"
	"github.com/agbru/natcalc/internal/service"
	"github.com/agbru/natcalc/internal/ui"
)

// Application represents the natcalc application instance.
// It encapsulates the configuration and provides methods to run
// the application in its various modes (CLI, server, verification).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Service executes the arithmetic operations.
	// Uses the interface type for better testability and dependency injection.
	Service service.Service
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	// args[0] is program name, args[1:] are the actual arguments
	programName := "natcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Service:   service.NewCalculatorService(cfg.MaxDigits),
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
// It dispatches to the appropriate handler (server, verification, or CLI).
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	// Server mode
	if a.Config.ServerMode {
		return a.runServer()
	}

	// Standard CLI calculation mode
	return a.runCalculate(ctx, out)
}

// runServer starts the HTTP server mode.
func (a *Application) runServer() int {
	srv := server.NewServer(a.Config, server.WithService(a.Service))
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runCalculate orchestrates the execution of the CLI calculation command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, stop := calculationContext(ctx, a.Config.Timeout)
	defer stop()

	quietOutput := a.Config.Quiet || a.Config.JSONOutput

	// Skip verbose output in quiet and JSON modes
	if !quietOutput {
		cli.PrintExecutionConfig(a.Config, out)
	}

	// Verification mode runs the engine and math/big side by side
	if a.Config.Verify {
		progressOut := out
		if quietOutput {
			progressOut = io.Discard
		}
		results := orchestration.ExecuteVerification(ctx, a.Service, a.Config, progressOut)
		return orchestration.AnalyzeVerificationResults(results, a.Config, out)
	}

	// Show a spinner while the engine works, unless output is scripted
	done := make(chan struct{})
	var displayWg sync.WaitGroup
	if !quietOutput {
		displayWg.Add(1)
		go cli.DisplayProgress(&displayWg, done, "computing "+a.Config.Op, out)
	}

	res, err := a.Service.Calculate(ctx, a.Config.Op, a.Config.Operands)
	close(done)
	displayWg.Wait()

	if err != nil {
		duration := a.Config.Timeout
		if !apperrors.IsContextError(err) {
			duration = 0
		}
		return apperrors.HandleCalculationError(err, duration, a.ErrWriter, cli.CLIColorProvider{})
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		JSONOutput: a.Config.JSONOutput,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := cli.DisplayResultWithConfig(out, res, a.Config.Operands, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
