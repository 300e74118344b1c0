// Package bignat implements an arbitrary-precision unsigned integer stored
// as a little-endian sequence of decimal digits, together with the
// arithmetic needed to use it as a drop-in numeric type: addition, checked
// subtraction, multiplication (scalar and full), scalar and full long
// division with remainder, exponentiation, ordering, and decimal
// parse/format.
//
// Every operation is a pure function over immutable inputs producing a new
// owned result. Because no operation mutates an operand, Nat values may be
// freely shared for concurrent read access without synchronization.
//
// Multiplication is deliberately schoolbook O(n·m); no Karatsuba or FFT
// backend is provided.
package bignat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// radix is the fixed base used for storage and I/O.
// Each stored digit lies in [0, radix).
const radix = 10

// Calculation errors returned by the checked entry points.
// All error conditions are deterministic functions of the operands;
// nothing here is transient or retryable.
var (
	// ErrDivisionByZero is returned by any division or remainder operation
	// when the divisor is the zero value.
	ErrDivisionByZero = errors.New("bignat: division by zero")
	// ErrUnderflow is returned by SubChecked when the minuend is strictly
	// less than the subtrahend.
	ErrUnderflow = errors.New("bignat: subtraction underflow")
)

// SyntaxError reports the first offending rune encountered while parsing a
// decimal string. Parsing never yields a partial value: any invalid rune
// fails the whole parse.
type SyntaxError struct {
	// Input is the trimmed input that failed to parse.
	Input string
	// Pos is the byte offset of the first non-digit rune within Input.
	Pos int
}

// Error returns the error message for a SyntaxError.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bignat: invalid decimal digit at position %d in %q", e.Pos, e.Input)
}

// Nat is an arbitrary-precision unsigned integer.
//
// The representation is a little-endian slice of decimal digits: the digit
// at index 0 is the least significant. The slice may carry a run of
// most-significant zero digits; such a sequence and its stripped equivalent
// denote the same logical value. Both the empty (or nil) slice and an
// all-zero slice denote zero, so the zero value of Nat is ready to use.
//
// Nat values are immutable: every method returns a new value and never
// writes to an operand's digit storage.
type Nat struct {
	digits []uint8
}

// FromUint64 constructs a Nat from a native unsigned integer.
// It is defined as format-then-parse of the integer's canonical decimal
// representation and is total: it cannot fail for any uint64.
//
// Parameters:
//   - n: The native integer value.
//
// Returns:
//   - Nat: The equivalent arbitrary-precision value.
func FromUint64(n uint64) Nat {
	v, err := Parse(strconv.FormatUint(n, 10))
	if err != nil {
		// strconv.FormatUint only ever emits ASCII digits.
		panic(fmt.Sprintf("bignat: FromUint64(%d): %v", n, err))
	}
	return v
}

// Parse converts a decimal string into a Nat.
//
// Leading and trailing whitespace is trimmed; every remaining rune must be
// an ASCII decimal digit. If any rune fails that test the parse fails
// entirely with a *SyntaxError — a valid prefix is never returned. An input
// that is empty after trimming parses as zero.
//
// Parameters:
//   - s: The decimal string to parse, e.g. "000123".
//
// Returns:
//   - Nat: The parsed value on success.
//   - error: A *SyntaxError if a non-digit rune is present.
func Parse(s string) (Nat, error) {
	s = strings.TrimSpace(s)
	out := make([]uint8, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return Nat{}, &SyntaxError{Input: s, Pos: i}
		}
		out = append(out, uint8(r-'0'))
	}
	// Digits were collected most-significant first; storage is
	// least-significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return Nat{digits: out}, nil
}

// MustParse is like Parse but panics on a syntax error.
// It simplifies initialization of known-good constants and test fixtures.
func MustParse(s string) Nat {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether the value is zero. Both the empty digit sequence
// and an all-zero sequence denote zero.
func (x Nat) IsZero() bool {
	for _, d := range x.digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// Digits returns the significant length of the value: the count of stored
// digits excluding the most-significant run of zeros. The zero value has
// significant length 0.
func (x Nat) Digits() int {
	n := len(x.digits)
	for n > 0 && x.digits[n-1] == 0 {
		n--
	}
	return n
}

// String renders the value in decimal. Zero renders as "0"; any nonzero
// value renders its significant digits most-significant first, with no
// leading zero padding and no separators.
func (x Nat) String() string {
	n := x.Digits()
	if n == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(n)
	for i := n - 1; i >= 0; i-- {
		b.WriteByte('0' + x.digits[i])
	}
	return b.String()
}

// GoString returns a debug representation including the stored digit count.
func (x Nat) GoString() string {
	return fmt.Sprintf("bignat.MustParse(%q) /* %d stored digits */", x.String(), len(x.digits))
}

// Sum folds a sequence of values with Add. The identity is the zero value:
// summing no operands yields zero. Addition is associative and commutative,
// so the fold order does not affect the result.
//
// Parameters:
//   - xs: The values to sum; may be empty.
//
// Returns:
//   - Nat: The sum of all operands.
func Sum(xs ...Nat) Nat {
	acc := Nat{}
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// timesRadix multiplies by radix^n as a pure structural operation: it
// prepends n zero low-order digits. It performs no digit arithmetic and is
// used by the full multiplication to shift partial products into position.
func (x Nat) timesRadix(n int) Nat {
	out := make([]uint8, n+len(x.digits))
	copy(out[n:], x.digits)
	return Nat{digits: out}
}

// clone returns a Nat backed by a fresh copy of the digit storage.
// Results handed to callers never alias an operand's storage.
func (x Nat) clone() Nat {
	out := make([]uint8, len(x.digits))
	copy(out, x.digits)
	return Nat{digits: out}
}
