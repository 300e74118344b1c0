// Package bignat provides arbitrary-precision decimal arithmetic.
// This file contains exponentiation.
package bignat

// Exp returns x raised to the power n.
//
// Exp is defined for every non-negative exponent and never fails:
// x^0 == 1 for all x, including 0^0 == 1.
//
// The implementation is iterative square-and-multiply. Multiplication is
// associative, so the result is identical to naive repeated multiplication
// while the loop depth stays logarithmic in n instead of tying stack depth
// to the exponent.
//
// Parameters:
//   - n: The exponent.
//
// Returns:
//   - Nat: The power x^n.
func (x Nat) Exp(n uint64) Nat {
	result := FromUint64(1)
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return result
}
