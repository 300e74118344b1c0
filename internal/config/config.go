// Package config provides the configuration management for the natcalc
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/natcalc/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by natcalc.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "NATCALC_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultOp is the default arithmetic operation.
	DefaultOp = "add"
	// DefaultTimeout is the default calculation timeout.
	DefaultTimeout = 1 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultMaxDigits is the default cap on operand length in decimal
	// digits. Zero means unlimited.
	DefaultMaxDigits = 1_000_000
)

// Operations lists the arithmetic operations the calculator accepts,
// in the order they are displayed in help output.
var Operations = []string{"add", "sub", "mul", "quo", "rem", "divmod", "pow", "cmp", "sum"}

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the operation to perform and its operands, to output and
// server options.
type AppConfig struct {
	// Op is the arithmetic operation to perform.
	Op string
	// Operands holds the decimal operand strings, taken from the
	// positional arguments after the flags.
	Operands []string
	// Verbose, if true, instructs the application to display the full
	// result regardless of its length.
	Verbose bool
	// Timeout sets the maximum duration for the calculation.
	Timeout time.Duration
	// MaxDigits caps the length of each operand in decimal digits.
	// Zero disables the cap.
	MaxDigits int
	// Verify, if true, recomputes the operation with math/big and
	// compares the two results.
	Verify bool
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses progress indicators, banners, and informational messages.
	Quiet bool
}

// operandArity describes how many operands each operation accepts.
// A max of -1 means unbounded.
var operandArity = map[string]struct{ min, max int }{
	"add":    {2, 2},
	"sub":    {2, 2},
	"mul":    {2, 2},
	"quo":    {2, 2},
	"rem":    {2, 2},
	"divmod": {2, 2},
	"pow":    {2, 2},
	"cmp":    {2, 2},
	"sum":    {1, -1},
}

// IsKnownOp reports whether name is a supported operation.
func IsKnownOp(name string) bool {
	_, ok := operandArity[name]
	return ok
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that the operation is supported, that the operand count matches
// the operation's arity, and that numerical values are within valid ranges.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.MaxDigits < 0 {
		return apperrors.NewConfigError("maximum digit count cannot be negative: %d", c.MaxDigits)
	}
	arity, ok := operandArity[c.Op]
	if !ok {
		return apperrors.NewConfigError("unrecognized operation: '%s'. Valid operations are: [%s]", c.Op, strings.Join(Operations, ", "))
	}
	// Server mode takes its operands per request, not from the command line.
	if c.ServerMode {
		return nil
	}
	if len(c.Operands) < arity.min {
		return apperrors.NewConfigError("operation '%s' needs at least %d operand(s), got %d", c.Op, arity.min, len(c.Operands))
	}
	if arity.max >= 0 && len(c.Operands) > arity.max {
		return apperrors.NewConfigError("operation '%s' takes at most %d operand(s), got %d", c.Op, arity.max, len(c.Operands))
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// and handles the parsing process. Positional arguments left after the flags
// become the operands. After parsing, it performs validation on the resulting
// configuration.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	opHelp := fmt.Sprintf("Operation to perform: one of [%s].", strings.Join(Operations, ", "))

	config := AppConfig{}
	fs.StringVar(&config.Op, "op", DefaultOp, opHelp)
	fs.BoolVar(&config.Verbose, "v", false, "Display the full value of the result (can be very long).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the calculation.")
	fs.IntVar(&config.MaxDigits, "max-digits", DefaultMaxDigits, "Maximum operand length in decimal digits (0 = unlimited).")
	fs.BoolVar(&config.Verify, "verify", false, "Recompute the result with math/big and compare.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Op = strings.ToLower(config.Op)
	config.Operands = fs.Args()

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
