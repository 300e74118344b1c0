// Package bignat provides arbitrary-precision decimal arithmetic.
// This file contains the division engine: a scalar fast path, a
// trivial-result shortcut, and full normalized long division modeled on
// Knuth's Algorithm D.
package bignat

// QuoRem returns the quotient and remainder of x / y.
//
// Internally the engine dispatches three ways, each with its own complexity
// and edge-case handling:
//
//  1. Scalar divisor (significant length 1): one high-to-low pass with a
//     native-width running remainder, O(n).
//  2. Dividend shorter than divisor: the quotient is zero and the remainder
//     is the dividend unchanged, O(1).
//  3. General case: normalized long division (see longDivide).
//
// Parameters:
//   - y: The divisor.
//
// Returns:
//   - Nat: The quotient, such that x == quotient*y + remainder.
//   - Nat: The remainder, strictly less than y.
//   - error: ErrDivisionByZero iff y is the zero value.
func (x Nat) QuoRem(y Nat) (Nat, Nat, error) {
	switch {
	case y.IsZero():
		return Nat{}, Nat{}, ErrDivisionByZero
	case y.Digits() == 1:
		// With significant length 1 the only nonzero digit is at index 0.
		return x.QuoRemScalar(uint32(y.digits[0]))
	case x.Digits() < y.Digits():
		return Nat{}, x.clone(), nil
	default:
		q, r := longDivide(x, y)
		return q, r, nil
	}
}

// Quo returns the quotient of x / y.
//
// Returns:
//   - Nat: The quotient.
//   - error: ErrDivisionByZero iff y is the zero value.
func (x Nat) Quo(y Nat) (Nat, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x / y, built by discarding the quotient.
//
// Returns:
//   - Nat: The remainder, strictly less than y.
//   - error: ErrDivisionByZero iff y is the zero value.
func (x Nat) Rem(y Nat) (Nat, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// QuoRemScalar returns the quotient and remainder of x / d for a bounded
// native divisor. It is the scalar fast path of the division engine,
// exposed separately because its complexity and failure surface differ
// from the full-value entry point.
//
// The digits are consumed most-significant first while a native-width
// running remainder is folded through `r*radix + digit`; quotient digits
// are produced most-significant first and stored back in little-endian
// positions.
//
// Parameters:
//   - d: The scalar divisor.
//
// Returns:
//   - Nat: The quotient.
//   - Nat: The remainder, strictly less than d.
//   - error: ErrDivisionByZero iff d == 0.
func (x Nat) QuoRemScalar(d uint32) (Nat, Nat, error) {
	if d == 0 {
		return Nat{}, Nat{}, ErrDivisionByZero
	}
	quo := make([]uint8, len(x.digits))
	rem := uint64(0)
	for i := len(x.digits) - 1; i >= 0; i-- {
		t := rem*radix + uint64(x.digits[i])
		quo[i] = uint8(t / uint64(d))
		rem = t % uint64(d)
	}
	var remDigits []uint8
	for rem > 0 {
		remDigits = append(remDigits, uint8(rem%radix))
		rem /= radix
	}
	return Nat{digits: quo}, Nat{digits: remDigits}, nil
}

// QuoScalar returns the quotient of x / d.
//
// Returns:
//   - Nat: The quotient.
//   - error: ErrDivisionByZero iff d == 0.
func (x Nat) QuoScalar(d uint32) (Nat, error) {
	q, _, err := x.QuoRemScalar(d)
	return q, err
}

// RemScalar returns the remainder of x / d.
//
// Returns:
//   - Nat: The remainder, strictly less than d.
//   - error: ErrDivisionByZero iff d == 0.
func (x Nat) RemScalar(d uint32) (Nat, error) {
	_, r, err := x.QuoRemScalar(d)
	return r, err
}

// lookup reads a digit from a raw digit slice, defaulting to zero past the
// stored length. The division engine reads freely beyond its remainder
// buffer; every out-of-range position is a zero digit.
func lookup(s []uint8, i int) uint8 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// put writes a digit at position i, growing the slice when the position is
// one past the stored length, and returns the (possibly reallocated) slice.
func put(s []uint8, i int, v uint8) []uint8 {
	if i < len(s) {
		s[i] = v
		return s
	}
	return append(s, v)
}

// trialDigit estimates quotient digit k from the three most significant
// remainder digits of the current window and the two leading divisor
// digits, clamped to radix-1. After normalization the estimate is never too
// low and at most one too high.
func trialDigit(r, d []uint8, k, m int) uint8 {
	km := k + m
	r3 := (uint64(lookup(r, km))*radix+uint64(lookup(r, km-1)))*radix + uint64(lookup(r, km-2))
	d2 := uint64(lookup(d, m-1))*radix + uint64(lookup(d, m-2))
	return uint8(min(r3/d2, radix-1))
}

// windowSmaller reports whether the m+1-digit window of r at offset k is
// strictly smaller than dq. It compares most-significant digit first at the
// given offset, without materializing the window as a value; a general
// comparison cannot be used here because the window is embedded in the
// remainder buffer.
func windowSmaller(r, dq []uint8, k, m int) bool {
	i, j := m, 0
	for i != j {
		if lookup(r, i+k) != lookup(dq, i) {
			j = i
		} else {
			i--
		}
	}
	return lookup(r, i+k) < lookup(dq, i)
}

// subtractWindow subtracts dq from the m+1-digit window of r at offset k in
// place, schoolbook borrow subtraction restricted to that window. The
// caller guarantees dq does not exceed the window value, so no borrow
// escapes. The possibly grown remainder buffer is returned.
func subtractWindow(r, dq []uint8, k, m int) []uint8 {
	borrow := uint64(0)
	for i := 0; i <= m; i++ {
		diff := radix + uint64(lookup(r, i+k)) - (uint64(lookup(dq, i)) + borrow)
		r = put(r, i+k, uint8(diff%radix))
		borrow = 1 - diff/radix
	}
	return r
}

// longDivide performs full normalized long division (Knuth's Algorithm D).
// It requires 2 <= y.Digits() <= x.Digits() and a nonzero divisor; the
// dispatch in QuoRem establishes both, so this branch never tests for zero
// itself.
//
// Both operands are first scaled by f = radix / (leading divisor digit + 1).
// The scaling guarantees the divisor's leading digit is large enough that
// the 3-by-2 trial estimate is never too low and at most 1 too high, which
// bounds the correction step to a single decrement. The quotient needs no
// unscaling; the remainder is unscaled by one scalar division at the end.
func longDivide(x, y Nat) (Nat, Nat) {
	n := x.Digits()
	m := y.Digits()

	f := uint32(radix / (uint64(y.digits[m-1]) + 1))

	r := x.MulScalar(f).digits
	d := y.MulScalar(f)
	quo := make([]uint8, n-m+1)

	for k := n - m; k >= 0; k-- {
		qt := trialDigit(r, d.digits, k, m)
		dq := d.MulScalar(uint32(qt))
		if windowSmaller(r, dq.digits, k, m) {
			qt--
			dq = d.MulScalar(uint32(qt))
		}
		quo[k] = qt
		r = subtractWindow(r, dq.digits, k, m)
	}

	// Undo normalization: the scaled remainder divided by f is the true
	// remainder. f is never zero, so the scalar division cannot fail.
	rem, _, err := Nat{digits: r}.QuoRemScalar(f)
	if err != nil {
		panic(err)
	}
	return Nat{digits: quo}, rem
}
