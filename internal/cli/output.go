// Package cli provides output utilities for exporting calculation results.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/natcalc/internal/service"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// JSONOutput emits the result as a JSON document.
	JSONOutput bool
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
}

// jsonResult is the JSON document emitted in JSON output mode.
type jsonResult struct {
	Op         string   `json:"op"`
	Operands   []string `json:"operands"`
	Values     []string `json:"values"`
	DurationMs float64  `json:"duration_ms"`
}

// WriteResultToFile writes a calculation result to a file.
//
// Parameters:
//   - res: The calculation result.
//   - operands: The original operand strings.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(res *service.Result, operands []string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", res.Op)
	fmt.Fprintf(file, "# Operands: %d\n", len(operands))
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	for i, v := range res.Values {
		fmt.Fprintf(file, "# Digits[%d]: %d\n", i, len(v))
	}
	fmt.Fprintf(file, "\n")

	// Write result values, one per line
	for _, v := range res.Values {
		fmt.Fprintln(file, v)
	}

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line result suitable for scripting; divmod yields the
// quotient and remainder separated by a space.
//
// Parameters:
//   - res: The calculation result.
//
// Returns:
//   - string: The formatted result string.
func FormatQuietResult(res *service.Result) string {
	return strings.Join(res.Values, " ")
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - res: The calculation result.
func DisplayQuietResult(out io.Writer, res *service.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayJSONResult outputs a result as a JSON document.
//
// Parameters:
//   - out: The output writer.
//   - res: The calculation result.
//   - operands: The original operand strings.
//
// Returns:
//   - error: An error if encoding fails.
func DisplayJSONResult(out io.Writer, res *service.Result, operands []string) error {
	doc := jsonResult{
		Op:         res.Op,
		Operands:   operands,
		Values:     res.Values,
		DurationMs: float64(res.Duration.Microseconds()) / 1000.0,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// DisplayResultWithConfig displays a result with the given output configuration.
// This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - res: The calculation result.
//   - operands: The original operand strings.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output or JSON encoding fails.
func DisplayResultWithConfig(out io.Writer, res *service.Result, operands []string, config OutputConfig) error {
	switch {
	case config.JSONOutput:
		if err := DisplayJSONResult(out, res, operands); err != nil {
			return err
		}
	case config.Quiet:
		DisplayQuietResult(out, res)
	default:
		DisplayResult(res, operands, config.Verbose, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(res, operands, config); err != nil {
			return err
		}
		if !config.Quiet && !config.JSONOutput {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ColorGreen(), ColorCyan(), config.OutputFile, ColorReset())
		}
	}

	return nil
}
