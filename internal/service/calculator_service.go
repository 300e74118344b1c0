package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/agbru/natcalc/internal/bignat"
	"github.com/agbru/natcalc/internal/config"
	apperrors "github.com/agbru/natcalc/internal/errors"
	"github.com/agbru/natcalc/internal/parallel"
)

// Result holds the outcome of one calculation request.
type Result struct {
	// Op is the operation that was performed.
	Op string `json:"op"`
	// Values holds the decimal result(s). Most operations produce one
	// value; divmod produces quotient then remainder; cmp produces
	// "-1", "0" or "1".
	Values []string `json:"values"`
	// Duration is the time the calculation took.
	Duration time.Duration `json:"duration"`
}

// Service defines the interface for arithmetic calculation services.
// This abstraction enables dependency injection and easier testing/mocking.
type Service interface {
	// Calculate performs the requested operation on the decimal operands.
	//
	// Parameters:
	//   - ctx: The context for cancellation.
	//   - op: The operation name (add, sub, mul, quo, rem, divmod, pow, cmp, sum).
	//   - operands: The decimal operand strings.
	//
	// Returns:
	//   - *Result: The result values and timing.
	//   - error: An error if validation or calculation fails.
	Calculate(ctx context.Context, op string, operands []string) (*Result, error)
}

// CalculatorService handles the core logic for executing arithmetic
// operations. It centralizes operand validation, parsing, and dispatch to
// the engine. Implements the Service interface.
type CalculatorService struct {
	maxDigits int
}

// Ensure CalculatorService implements Service interface.
var _ Service = (*CalculatorService)(nil)

// NewCalculatorService creates a new instance of CalculatorService.
//
// Parameters:
//   - maxDigits: The maximum allowed operand length in decimal digits
//     (0 for no limit).
func NewCalculatorService(maxDigits int) *CalculatorService {
	return &CalculatorService{maxDigits: maxDigits}
}

// Calculate validates and parses the operands, then executes the requested
// operation. Parsing runs one goroutine per operand; the engine itself is
// sequential, so cancellation is observed between the parse and execute
// phases and while waiting for the engine to finish.
func (s *CalculatorService) Calculate(ctx context.Context, op string, operands []string) (*Result, error) {
	if !config.IsKnownOp(op) {
		return nil, apperrors.NewValidationError("op", "unknown operation", op)
	}
	if err := s.validateArity(op, len(operands)); err != nil {
		return nil, err
	}
	if s.maxDigits > 0 {
		for i, raw := range operands {
			if len(raw) > s.maxDigits {
				return nil, apperrors.NewValidationError(
					"operands", "operand "+strconv.Itoa(i)+" exceeds the digit limit", len(raw))
			}
		}
	}

	// pow parses its exponent as a native integer, not as an engine value.
	var exponent uint64
	parseCount := len(operands)
	if op == "pow" {
		e, err := strconv.ParseUint(operands[1], 10, 64)
		if err != nil {
			return nil, apperrors.NewValidationError("operands", "exponent must fit in 64 bits", operands[1])
		}
		exponent = e
		parseCount = 1
	}

	values, err := parseOperands(operands[:parseCount])
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := s.executeWithContext(ctx, op, values, exponent)
	if err != nil {
		return nil, err
	}
	return &Result{Op: op, Values: out, Duration: time.Since(start)}, nil
}

// validateArity checks the operand count against the operation's arity.
func (s *CalculatorService) validateArity(op string, count int) error {
	switch op {
	case "sum":
		if count < 1 {
			return apperrors.NewValidationError("operands", "sum needs at least one operand", count)
		}
	default:
		if count != 2 {
			return apperrors.NewValidationError("operands", "operation '"+op+"' takes exactly two operands", count)
		}
	}
	return nil
}

// parseOperands parses all operand strings concurrently, keeping the first
// failure. Parsing is pure, so one goroutine per operand is safe.
func parseOperands(raw []string) ([]bignat.Nat, error) {
	values := make([]bignat.Nat, len(raw))
	var ec parallel.ErrorCollector
	var wg sync.WaitGroup
	for i, s := range raw {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := bignat.Parse(s)
			if err != nil {
				ec.SetError(apperrors.NewValidationError("operands", err.Error(), s))
				return
			}
			values[i] = v
		}()
	}
	wg.Wait()
	if err := ec.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// executeWithContext runs the engine in a goroutine so the caller's deadline
// is honored even though the engine itself has no cancellation points. If the
// context expires first, the engine goroutine is abandoned and finishes in
// the background.
func (s *CalculatorService) executeWithContext(ctx context.Context, op string, values []bignat.Nat, exponent uint64) ([]string, error) {
	type outcome struct {
		values []string
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		out, err := execute(op, values, exponent)
		done <- outcome{values: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case o := <-done:
		return o.values, o.err
	}
}

// execute dispatches one operation to the engine.
func execute(op string, values []bignat.Nat, exponent uint64) ([]string, error) {
	switch op {
	case "add":
		return []string{values[0].Add(values[1]).String()}, nil
	case "sub":
		diff, err := values[0].SubChecked(values[1])
		if err != nil {
			return nil, apperrors.NewCalculationError(err)
		}
		return []string{diff.String()}, nil
	case "mul":
		return []string{values[0].Mul(values[1]).String()}, nil
	case "quo":
		quo, err := values[0].Quo(values[1])
		if err != nil {
			return nil, apperrors.NewCalculationError(err)
		}
		return []string{quo.String()}, nil
	case "rem":
		rem, err := values[0].Rem(values[1])
		if err != nil {
			return nil, apperrors.NewCalculationError(err)
		}
		return []string{rem.String()}, nil
	case "divmod":
		quo, rem, err := values[0].QuoRem(values[1])
		if err != nil {
			return nil, apperrors.NewCalculationError(err)
		}
		return []string{quo.String(), rem.String()}, nil
	case "pow":
		return []string{values[0].Exp(exponent).String()}, nil
	case "cmp":
		return []string{strconv.Itoa(values[0].Cmp(values[1]))}, nil
	case "sum":
		return []string{bignat.Sum(values...).String()}, nil
	}
	return nil, apperrors.NewValidationError("op", "unknown operation", op)
}
