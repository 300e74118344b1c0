package bignat

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// The properties below pit every engine operation against the native
// integer arithmetic as an oracle, inside ranges where the native results
// cannot overflow. This mirrors the classic checks for a positional
// arithmetic engine: if construction, ordering, and the four operations all
// agree with the machine integers on millions of random inputs, the digit
// plumbing underneath is almost certainly sound.
func TestEngineProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("formatting matches the native decimal rendering", prop.ForAll(
		func(n uint64) bool {
			return FromUint64(n).String() == strconv.FormatUint(n, 10)
		},
		gen.UInt64(),
	))

	properties.Property("parse(format(n)) round-trips", prop.ForAll(
		func(n uint64) bool {
			v := FromUint64(n)
			parsed, err := Parse(v.String())
			return err == nil && parsed.Equal(v)
		},
		gen.UInt64(),
	))

	properties.Property("significant length equals the decimal digit count", prop.ForAll(
		func(n uint64) bool {
			want := len(strconv.FormatUint(n, 10))
			if n == 0 {
				want = 0
			}
			return FromUint64(n).Digits() == want
		},
		gen.UInt64(),
	))

	properties.Property("ordering is consistent with the native order", prop.ForAll(
		func(x, y uint64) bool {
			want := 0
			switch {
			case x < y:
				want = -1
			case x > y:
				want = 1
			}
			return FromUint64(x).Cmp(FromUint64(y)) == want
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("addition matches the native sum", prop.ForAll(
		func(x, y uint64) bool {
			return FromUint64(x).Add(FromUint64(y)).Equal(FromUint64(x + y))
		},
		gen.UInt64Range(0, 1<<63), gen.UInt64Range(0, 1<<63-1),
	))

	properties.Property("checked subtraction succeeds exactly when it should", prop.ForAll(
		func(x, y uint64) bool {
			diff, err := FromUint64(x).SubChecked(FromUint64(y))
			if x >= y {
				return err == nil && diff.Equal(FromUint64(x-y))
			}
			return err != nil
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("scalar multiplication matches the native product", prop.ForAll(
		func(x uint32, m uint32) bool {
			want := uint64(x) * uint64(m)
			return FromUint64(uint64(x)).MulScalar(m).Equal(FromUint64(want))
		},
		gen.UInt32(), gen.UInt32(),
	))

	properties.Property("multiplication matches the native product", prop.ForAll(
		func(x, y uint64) bool {
			return FromUint64(x).Mul(FromUint64(y)).Equal(FromUint64(x * y))
		},
		gen.UInt64Range(0, 1<<32-1), gen.UInt64Range(0, 1<<32-1),
	))

	properties.Property("scalar division matches the native quotient and remainder", prop.ForAll(
		func(x uint64, d uint32) bool {
			quo, rem, err := FromUint64(x).QuoRemScalar(d)
			if d == 0 {
				return err == ErrDivisionByZero
			}
			return err == nil &&
				quo.Equal(FromUint64(x/uint64(d))) &&
				rem.Equal(FromUint64(x%uint64(d)))
		},
		gen.UInt64(), gen.UInt32(),
	))

	properties.Property("full division satisfies the Euclidean invariant", prop.ForAll(
		func(x, y uint64) bool {
			a, b := FromUint64(x), FromUint64(y)
			quo, rem, err := a.QuoRem(b)
			if y == 0 {
				return err == ErrDivisionByZero
			}
			if err != nil {
				return false
			}
			return quo.Equal(FromUint64(x/y)) &&
				rem.Equal(FromUint64(x%y)) &&
				quo.Mul(b).Add(rem).Equal(a) &&
				rem.Less(b)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("power matches the native power", prop.ForAll(
		func(base uint64, n uint64) bool {
			want := uint64(1)
			for i := uint64(0); i < n; i++ {
				want *= base
			}
			return FromUint64(base).Exp(n).Equal(FromUint64(want))
		},
		gen.UInt64Range(0, 99), gen.UInt64Range(0, 9),
	))

	properties.Property("power identities hold for arbitrary values", prop.ForAll(
		func(n uint64) bool {
			v := FromUint64(n)
			return v.Exp(0).Equal(FromUint64(1)) && v.Exp(1).Equal(v)
		},
		gen.UInt64(),
	))

	properties.Property("sum of a slice matches the native sum", prop.ForAll(
		func(xs []uint64) bool {
			var want uint64
			values := make([]Nat, len(xs))
			for i, n := range xs {
				want += n
				values[i] = FromUint64(n)
			}
			return Sum(values...).Equal(FromUint64(want))
		},
		gen.SliceOf(gen.UInt64Range(0, 1<<32-1)),
	))

	properties.TestingRun(t)
}
