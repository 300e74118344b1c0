// Package bignat provides arbitrary-precision decimal arithmetic.
// This file contains the digit window: the bidirectional, zero-padded view
// that every two-operand algorithm uses to align operands of unequal length
// without materializing padded copies.
package bignat

// digitWindow is a transient, non-owning view of a value's digits bounded
// to a requested logical length. Read from the front it yields digits
// starting at the least-significant position; read from the back it yields
// digits from position length-1 down to 0. Both directions synthesize zero
// for positions beyond the stored digit count, and the view is exhausted
// once the two cursors cross (or immediately, for length 0).
//
// The cursors are local to a single call; a window is never shared between
// goroutines and never outlives the Nat it observes.
type digitWindow struct {
	digits []uint8
	front  int
	back   int
	empty  bool
}

// window opens a digit window of the given logical length over x.
// The length may be zero, shorter than, equal to, or far beyond the stored
// digit count; positions past the stored range read as zero.
func (x Nat) window(length int) digitWindow {
	return digitWindow{
		digits: x.digits,
		front:  0,
		back:   length - 1,
		empty:  length == 0,
	}
}

// next yields the digit at the front cursor and advances it toward the
// most-significant end. It reports false once the window is exhausted.
func (w *digitWindow) next() (uint8, bool) {
	if w.empty || w.front > w.back {
		return 0, false
	}
	var d uint8
	if w.front < len(w.digits) {
		d = w.digits[w.front]
	}
	w.front++
	return d, true
}

// nextBack yields the digit at the back cursor and advances it toward the
// least-significant end. It reports false once the window is exhausted.
func (w *digitWindow) nextBack() (uint8, bool) {
	if w.empty || w.back < w.front {
		return 0, false
	}
	var d uint8
	if w.back < len(w.digits) {
		d = w.digits[w.back]
	}
	w.back--
	return d, true
}
