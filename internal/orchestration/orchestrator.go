// Package orchestration coordinates the concurrent execution of the engine
// and the math/big reference implementation in verification mode, and turns
// their results into a comparative report.
package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"sync"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/natcalc/internal/cli"
	"github.com/agbru/natcalc/internal/config"
	apperrors "github.com/agbru/natcalc/internal/errors"
	"github.com/agbru/natcalc/internal/service"
	"github.com/agbru/natcalc/internal/ui"
)

// CalculationResult encapsulates the outcome of one implementation's run.
// It serves as a standardized container for results from the engine and the
// reference, facilitating comparison and reporting.
type CalculationResult struct {
	// Name identifies the implementation ("engine" or "math/big").
	Name string
	// Values holds the computed result(s). It is nil if an error occurred.
	Values []string
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// ExecuteVerification runs the engine and the math/big reference
// concurrently on the same request and collects both outcomes.
//
// It manages the lifecycle of the two calculation goroutines and coordinates
// the display of the progress spinner. Errors are captured per result rather
// than aborting the group, so a failure on one side still yields a report.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - svc: The calculation service backed by the engine.
//   - cfg: The application configuration (operation, operands).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []CalculationResult: The engine result followed by the reference result.
func ExecuteVerification(ctx context.Context, svc service.Service, cfg config.AppConfig, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, 2)
	done := make(chan struct{})

	var displayWg sync.WaitGroup
	if !cfg.Quiet && !cfg.JSONOutput {
		displayWg.Add(1)
		go cli.DisplayProgress(&displayWg, done, "verifying "+cfg.Op, out)
	}

	g.Go(func() error {
		startTime := time.Now()
		res, err := svc.Calculate(ctx, cfg.Op, cfg.Operands)
		result := CalculationResult{Name: "engine", Duration: time.Since(startTime), Err: err}
		if err == nil {
			result.Values = res.Values
		}
		results[0] = result
		return nil
	})
	g.Go(func() error {
		startTime := time.Now()
		values, err := referenceCalculate(ctx, cfg.Op, cfg.Operands)
		results[1] = CalculationResult{Name: "math/big", Values: values, Duration: time.Since(startTime), Err: err}
		return nil
	})

	g.Wait()
	close(done)
	displayWg.Wait()

	return results
}

// AnalyzeVerificationResults compares the engine's outcome with the
// reference's and generates a summary report.
//
// Both implementations must agree on success or failure, and on the result
// values when they succeed. Any disagreement is reported as a mismatch.
//
// Parameters:
//   - results: The engine and reference results from ExecuteVerification.
//   - cfg: The application configuration.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeVerificationResults(results []CalculationResult, cfg config.AppConfig, out io.Writer) int {
	fmt.Fprintf(out, "\n--- Verification Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sImplementation%s\t%sDuration%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := cli.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(tw, "%s%s%s\t%s%s%s\t%s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(),
			ui.ColorYellow(), duration, ui.ColorReset(),
			status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	engine, reference := results[0], results[1]

	// Both failing the same way counts as agreement: the engine must reject
	// exactly what the reference rejects (division by zero, underflow).
	if engine.Err != nil && reference.Err != nil {
		fmt.Fprintf(out, "\nGlobal Status: Agreement. Both implementations rejected the input.\n")
		return apperrors.HandleCalculationError(engine.Err, engine.Duration, out, cli.CLIColorProvider{})
	}
	if (engine.Err == nil) != (reference.Err == nil) {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! One implementation failed where the other succeeded.\n")
		return apperrors.ExitErrorMismatch
	}

	if len(engine.Values) != len(reference.Values) {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The implementations disagree on the result shape.\n")
		return apperrors.ExitErrorMismatch
	}
	for i := range engine.Values {
		if engine.Values[i] != reference.Values[i] {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. Both implementations agree.\n")
	if err := cli.DisplayResultWithConfig(out, &service.Result{
		Op:       cfg.Op,
		Values:   engine.Values,
		Duration: engine.Duration,
	}, cfg.Operands, cli.OutputConfig{
		OutputFile: cfg.OutputFile,
		JSONOutput: cfg.JSONOutput,
		Quiet:      cfg.Quiet,
		Verbose:    cfg.Verbose,
	}); err != nil {
		fmt.Fprintf(out, "Warning: failed to write result: %v\n", err)
	}
	return apperrors.ExitSuccess
}

// referenceCalculate evaluates the operation with math/big. It mirrors the
// engine's contract: natural numbers only, checked subtraction, explicit
// division-by-zero errors, and a 64-bit exponent for pow.
func referenceCalculate(ctx context.Context, op string, operands []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parsed := make([]*big.Int, 0, len(operands))
	limit := len(operands)
	if op == "pow" {
		limit = 1
	}
	for _, raw := range operands[:limit] {
		v, ok := new(big.Int).SetString(raw, 10)
		if !ok || v.Sign() < 0 {
			return nil, apperrors.NewValidationError("operands", "not a natural number", raw)
		}
		parsed = append(parsed, v)
	}

	switch op {
	case "add":
		return []string{new(big.Int).Add(parsed[0], parsed[1]).String()}, nil
	case "sub":
		if parsed[0].Cmp(parsed[1]) < 0 {
			return nil, errors.New("result would be negative")
		}
		return []string{new(big.Int).Sub(parsed[0], parsed[1]).String()}, nil
	case "mul":
		return []string{new(big.Int).Mul(parsed[0], parsed[1]).String()}, nil
	case "quo", "rem", "divmod":
		if parsed[1].Sign() == 0 {
			return nil, errors.New("division by zero")
		}
		quo, rem := new(big.Int).QuoRem(parsed[0], parsed[1], new(big.Int))
		switch op {
		case "quo":
			return []string{quo.String()}, nil
		case "rem":
			return []string{rem.String()}, nil
		}
		return []string{quo.String(), rem.String()}, nil
	case "pow":
		e, err := strconv.ParseUint(operands[1], 10, 64)
		if err != nil {
			return nil, apperrors.NewValidationError("operands", "exponent must fit in 64 bits", operands[1])
		}
		return []string{new(big.Int).Exp(parsed[0], new(big.Int).SetUint64(e), nil).String()}, nil
	case "cmp":
		return []string{strconv.Itoa(parsed[0].Cmp(parsed[1]))}, nil
	case "sum":
		total := new(big.Int)
		for _, v := range parsed {
			total.Add(total, v)
		}
		return []string{total.String()}, nil
	}
	return nil, apperrors.NewValidationError("op", "unknown operation", op)
}
