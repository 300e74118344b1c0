// Package bignat provides arbitrary-precision decimal arithmetic.
// This file contains elementary addition and checked subtraction, both
// driven by the digit window.
package bignat

// Add returns x + y. Addition is total: there is no failure mode.
//
// Both operands are scanned low-to-high through windows of length
// L = max(significant lengths) with standard carry propagation; a final
// carry, if any, is appended as one extra most-significant digit, so the
// result holds at most L+1 digits.
//
// Parameters:
//   - y: The addend.
//
// Returns:
//   - Nat: The sum x + y.
func (x Nat) Add(y Nat) Nat {
	length := max(x.Digits(), y.Digits())
	out := make([]uint8, 0, length+1)
	wx, wy := x.window(length), y.window(length)
	carry := uint32(0)
	for {
		dx, ok := wx.next()
		if !ok {
			break
		}
		dy, _ := wy.next()
		sum := uint32(dx) + uint32(dy) + carry
		out = append(out, uint8(sum%radix))
		carry = sum / radix
	}
	if carry != 0 {
		out = append(out, uint8(carry))
	}
	return Nat{digits: out}
}

// SubChecked returns x - y, or ErrUnderflow if the true result would be
// negative. No wrapped or truncated value is ever produced.
//
// Both operands are scanned low-to-high through windows of length
// L = max(significant lengths) with standard borrow propagation; a borrow
// remaining after the most-significant position signals underflow.
//
// Parameters:
//   - y: The subtrahend.
//
// Returns:
//   - Nat: The difference x - y when x >= y.
//   - error: ErrUnderflow when x < y.
func (x Nat) SubChecked(y Nat) (Nat, error) {
	length := max(x.Digits(), y.Digits())
	out := make([]uint8, 0, length)
	wx, wy := x.window(length), y.window(length)
	borrow := uint32(0)
	for {
		dx, ok := wx.next()
		if !ok {
			break
		}
		dy, _ := wy.next()
		diff := radix + uint32(dx) - (uint32(dy) + borrow)
		out = append(out, uint8(diff%radix))
		borrow = 1 - diff/radix
	}
	if borrow != 0 {
		return Nat{}, ErrUnderflow
	}
	return Nat{digits: out}, nil
}

// Sub returns x - y for callers that have already established x >= y.
//
// It is sugar over SubChecked, not a distinct algorithm. Calling Sub with a
// minuend smaller than the subtrahend is a precondition violation and
// panics; it never silently wraps.
func (x Nat) Sub(y Nat) Nat {
	diff, err := x.SubChecked(y)
	if err != nil {
		panic(err)
	}
	return diff
}
