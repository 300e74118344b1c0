// The cli package provides functions for building a command-line interface
// (CLI) for the arbitrary-precision calculator. It handles the asynchronous
// display of a progress spinner during long calculations and formats the
// results for a clear and readable presentation.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/agbru/natcalc/internal/service"
	"github.com/agbru/natcalc/internal/ui"
	"github.com/briandowns/spinner"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// TruncationLimit is the digit threshold from which a value is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// SpinnerRefreshRate defines the refresh frequency of the progress spinner.
	SpinnerRefreshRate = 200 * time.Millisecond
)

// Color functions return ANSI escape codes from the current theme.
// They delegate to the ui package to reduce coupling.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return ui.GetCurrentTheme().Reset }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return ui.GetCurrentTheme().Error }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return ui.GetCurrentTheme().Success }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return ui.GetCurrentTheme().Warning }

// ColorMagenta returns the info color from the current theme.
func ColorMagenta() string { return ui.GetCurrentTheme().Info }

// ColorCyan returns the secondary color from the current theme.
func ColorCyan() string { return ui.GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return ui.GetCurrentTheme().Bold }

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the display routine from a specific
// spinner implementation, facilitating easier testing and maintenance.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as SpinnerRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress manages the asynchronous display of a spinner with elapsed
// time while a calculation runs. The engine is sequential and exposes no
// intermediate progress, so the spinner shows activity and elapsed time
// rather than a percentage. It is designed to run in a dedicated goroutine
// and shuts down when done is closed.
//
// Parameters:
//   - wg: A WaitGroup to signal when the display routine is complete.
//   - done: A channel closed when the calculation finishes.
//   - label: A short description of the running operation.
//   - out: The io.Writer to which the spinner is rendered.
func DisplayProgress(wg *sync.WaitGroup, done <-chan struct{}, label string, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(fmt.Sprintf(" %s...", label))
	s.Start()
	defer s.Stop()

	start := time.Now()
	ticker := time.NewTicker(SpinnerRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.UpdateSuffix(fmt.Sprintf(" %s... (%s)", label, FormatExecutionDuration(time.Since(start))))
		}
	}
}

// truncateValue shortens a long decimal string for terminal display, keeping
// DisplayEdges digits at each end.
func truncateValue(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:]
}

// valueLabels returns the display labels for the result values of an
// operation. Most operations produce a single unnamed value.
func valueLabels(op string) []string {
	switch op {
	case "divmod":
		return []string{"Quotient", "Remainder"}
	case "cmp":
		return []string{"Ordering"}
	default:
		return []string{"Result"}
	}
}

// DisplayResult formats and prints the final calculation result.
// It shows the evaluated expression, the result value(s), the digit count,
// and the calculation time. For very large values, it truncates the output
// unless verbose is true.
//
// Parameters:
//   - res: The calculation result.
//   - operands: The original operand strings, used to echo the expression.
//   - verbose: If true, prints the full values regardless of size.
//   - out: The io.Writer for the output.
func DisplayResult(res *service.Result, operands []string, verbose bool, out io.Writer) {
	exprParts := make([]string, len(operands))
	for i, op := range operands {
		exprParts[i] = truncateValue(op)
	}
	fmt.Fprintf(out, "\n%s--- Calculation result ---%s\n", ColorBold(), ColorReset())
	fmt.Fprintf(out, "Expression : %s%s(%s)%s\n", ColorMagenta(), res.Op, strings.Join(exprParts, ", "), ColorReset())

	labels := valueLabels(res.Op)
	truncated := false
	for i, v := range res.Values {
		label := "Result"
		if i < len(labels) {
			label = labels[i]
		}
		display := v
		if !verbose && len(v) > TruncationLimit {
			display = truncateValue(v)
			truncated = true
		}
		fmt.Fprintf(out, "%-10s : %s%s%s\n", label, ColorGreen(), display, ColorReset())
		fmt.Fprintf(out, "%-10s : %s%s%s\n", "Digits", ColorCyan(), formatNumberString(fmt.Sprintf("%d", len(v))), ColorReset())
	}
	if truncated {
		fmt.Fprintf(out, "(Tip: use the %s-v%s option to display the full value)\n", ColorYellow(), ColorReset())
	}

	durationStr := FormatExecutionDuration(res.Duration)
	if res.Duration == 0 {
		durationStr = "< 1µs"
	}
	fmt.Fprintf(out, "%-10s : %s%s%s\n", "Time", ColorGreen(), durationStr, ColorReset())
}

// formatNumberString inserts thousand separators into a numeric string.
// Optimized to reduce memory allocations
//
// Parameters:
//   - s: The numeric string to format.
//
// Returns:
//   - string: The formatted string with comma separators.
func formatNumberString(s string) string {
	if len(s) == 0 {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	// Precise calculation of the required capacity to avoid reallocations
	numSeparators := (n - 1) / 3
	capacity := len(prefix) + n + numSeparators
	var builder strings.Builder
	builder.Grow(capacity)
	builder.WriteString(prefix)

	firstGroupLen := n % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	builder.WriteString(s[:firstGroupLen])

	for i := firstGroupLen; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}
