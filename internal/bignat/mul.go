// Package bignat provides arbitrary-precision decimal arithmetic.
// This file contains scalar and full multiplication.
package bignat

// MulScalar returns x * m for a bounded native scalar.
//
// It is a single multiply-with-carry pass over every stored digit, flushing
// any remaining carry as additional most-significant digits: O(n) in the
// operand length and total. The uint32 bound keeps the per-digit product
// plus carry comfortably inside 64 bits.
//
// Parameters:
//   - m: The scalar multiplier.
//
// Returns:
//   - Nat: The product x * m.
func (x Nat) MulScalar(m uint32) Nat {
	out := make([]uint8, 0, len(x.digits)+10)
	carry := uint64(0)
	for _, d := range x.digits {
		t := uint64(m)*uint64(d) + carry
		out = append(out, uint8(t%radix))
		carry = t / radix
	}
	for carry != 0 {
		out = append(out, uint8(carry%radix))
		carry /= radix
	}
	return Nat{digits: out}
}

// Mul returns x * y.
//
// The product is accumulated from scalar multiplies: for each digit of y,
// low to high, x is multiplied by that digit, shifted into position by a
// structural radix shift, and added into the accumulator. The cost is
// O(n·m) digit operations — a deliberate scalability ceiling; no
// higher-order multiplication algorithm is in scope.
//
// Parameters:
//   - y: The multiplier.
//
// Returns:
//   - Nat: The product x * y.
func (x Nat) Mul(y Nat) Nat {
	out := Nat{}
	for i, d := range y.digits {
		if d == 0 {
			continue
		}
		out = out.Add(x.MulScalar(uint32(d)).timesRadix(i))
	}
	return out
}
