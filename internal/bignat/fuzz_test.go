package bignat

import (
	"math/big"
	"strings"
	"testing"
)

// FuzzQuoRem verifies the division engine against math/big on arbitrary
// operand pairs built from two native integers each, so both the scalar
// fast path and the multi-limb Algorithm D branch get exercised with
// dividends well beyond the native range.
func FuzzQuoRem(f *testing.F) {
	f.Add(uint64(0), uint64(0), uint64(0), uint64(7))
	f.Add(uint64(0), uint64(100), uint64(0), uint64(7))
	f.Add(uint64(1), uint64(0), uint64(0), uint64(999))
	f.Add(uint64(18446744073709551615), uint64(18446744073709551615), uint64(1), uint64(0))
	f.Add(uint64(12345), uint64(67890), uint64(0), uint64(19))
	f.Add(uint64(1), uint64(1), uint64(1), uint64(1))

	f.Fuzz(func(t *testing.T, xHi, xLo, yHi, yLo uint64) {
		shift := new(big.Int).Lsh(big.NewInt(1), 64)
		xBig := new(big.Int).Mul(new(big.Int).SetUint64(xHi), shift)
		xBig.Add(xBig, new(big.Int).SetUint64(xLo))
		yBig := new(big.Int).Mul(new(big.Int).SetUint64(yHi), shift)
		yBig.Add(yBig, new(big.Int).SetUint64(yLo))

		x := MustParse(xBig.String())
		y := MustParse(yBig.String())

		quo, rem, err := x.QuoRem(y)
		if yBig.Sign() == 0 {
			if err != ErrDivisionByZero {
				t.Fatalf("dividing by zero: err = %v, want ErrDivisionByZero", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("QuoRem(%s, %s) failed: %v", xBig, yBig, err)
		}

		wantQuo, wantRem := new(big.Int).QuoRem(xBig, yBig, new(big.Int))
		if quo.String() != wantQuo.String() || rem.String() != wantRem.String() {
			t.Errorf("QuoRem(%s, %s) = (%s, %s), want (%s, %s)",
				xBig, yBig, quo, rem, wantQuo, wantRem)
		}
	})
}

// FuzzParse checks that parsing agrees with math/big wherever both accept
// the input, and that accepted inputs round-trip through String.
func FuzzParse(f *testing.F) {
	f.Add("0")
	f.Add("000123")
	f.Add("  42  ")
	f.Add("12a3")
	f.Add("")
	f.Add("99999999999999999999999999999999999999")

	f.Fuzz(func(t *testing.T, s string) {
		v, err := Parse(s)
		if err != nil {
			return
		}
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			if !v.IsZero() {
				t.Fatalf("Parse(%q) = %s, want zero", s, v)
			}
			return
		}
		want, ok := new(big.Int).SetString(trimmed, 10)
		if !ok {
			t.Fatalf("Parse accepted %q but math/big rejects it", s)
		}
		if v.String() != want.String() {
			t.Errorf("Parse(%q) = %s, math/big reads %s", s, v, want)
		}
		back, err := Parse(v.String())
		if err != nil || !back.Equal(v) {
			t.Errorf("Parse(%q) does not round-trip through String: %v", s, err)
		}
	})
}
