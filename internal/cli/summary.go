package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/natcalc/internal/config"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the operation, the operand count, the timeout, and
// environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	writeOut(out, "--- Execution Configuration ---\n")
	writeOut(out, "Computing %s%s%s over %s%d%s operand(s) with a timeout of %s%s%s.\n",
		ColorMagenta(), cfg.Op, ColorReset(),
		ColorCyan(), len(cfg.Operands), ColorReset(),
		ColorYellow(), cfg.Timeout, ColorReset())
	writeOut(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ColorCyan(), runtime.NumCPU(), ColorReset(), ColorCyan(), runtime.Version(), ColorReset())
	if cfg.MaxDigits > 0 {
		writeOut(out, "Operand limit: %s%s%s decimal digits.\n",
			ColorCyan(), formatNumberString(fmt.Sprintf("%d", cfg.MaxDigits)), ColorReset())
	}
	if cfg.Verify {
		writeOut(out, "Verification against math/big is %senabled%s.\n", ColorGreen(), ColorReset())
	}
	writeOut(out, "\n--- Starting Execution ---\n")
}

// writeOut writes a formatted string to the output writer.
//
// Parameters:
//   - out: The destination writer.
//   - format: The format string (see fmt.Printf).
//   - a: Arguments for the format string.
func writeOut(out io.Writer, format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}
