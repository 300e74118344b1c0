// Package bignat provides arbitrary-precision decimal arithmetic.
// This file contains equality and ordering.
package bignat

// Equal reports whether x and y denote the same logical value.
// Stored most-significant zero digits are insignificant: two sequences that
// differ only in trailing zeros compare equal.
func (x Nat) Equal(y Nat) bool {
	n := x.Digits()
	if n != y.Digits() {
		return false
	}
	for i := 0; i < n; i++ {
		if x.digits[i] != y.digits[i] {
			return false
		}
	}
	return true
}

// Less reports whether x < y.
//
// If the significant lengths differ the shorter value is smaller.
// Otherwise the digits are compared lexicographically from the
// most-significant end over windows of the common significant length;
// the first strictly differing digit decides.
func (x Nat) Less(y Nat) bool {
	lx, ly := x.Digits(), y.Digits()
	if lx != ly {
		return lx < ly
	}
	wx, wy := x.window(lx), y.window(lx)
	for {
		dx, ok := wx.nextBack()
		if !ok {
			return false
		}
		dy, _ := wy.nextBack()
		if dx != dy {
			return dx < dy
		}
	}
}

// Cmp compares two values and returns
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// establishing the total order over Nat.
func (x Nat) Cmp(y Nat) int {
	switch {
	case x.Less(y):
		return -1
	case x.Equal(y):
		return 0
	default:
		return 1
	}
}
