package numfmt

import (
	"math"
	"strconv"
)

// Kind tags the variant held by a Number.
type Kind uint8

const (
	// KindInt holds an exact int64.
	KindInt Kind = iota
	// KindFloat holds an IEEE-754 float64.
	KindFloat
	// KindDecimal holds an arbitrary-precision Decimal.
	KindDecimal
)

// Number is the tagged union { Int, Float, Decimal } the formatter accepts.
// Arithmetic on the Decimal variant never loses precision except where
// rounding is explicitly requested; Int and Float are converted to Decimal
// internally whenever a rounding step needs exactness (see rounding.go),
// but Int additionally has a dedicated fast path (fastpath.go) that never
// touches floating point at all.
type Number struct {
	kind Kind
	i    int64
	f    float64
	d    Decimal
}

// Int wraps an int64.
func Int(i int64) Number { return Number{kind: KindInt, i: i} }

// Float wraps a float64.
func Float(f float64) Number { return Number{kind: KindFloat, f: f} }

// FromDecimal wraps a Decimal.
func FromDecimal(d Decimal) Number { return Number{kind: KindDecimal, d: d} }

// Kind reports which variant n holds.
func (n Number) Kind() Kind { return n.kind }

// IsInteger reports whether n has no fractional part: true for KindInt,
// true for KindFloat with an integral value, true for KindDecimal with a
// non-negative exponent (per the meta-adjustment rule in spec §4.2.2).
func (n Number) IsInteger() bool {
	switch n.kind {
	case KindInt:
		return true
	case KindFloat:
		return n.f == float64(int64(n.f))
	default:
		return n.d.exp >= 0
	}
}

// AsDecimal converts n to its exact Decimal representation. Int conversions
// are exact. Float conversions go through strconv.FormatFloat in the
// shortest round-tripping representation, which is exact for every float64
// that did not originate from an imprecise literal — the same tradeoff
// every float-to-decimal formatter in the ecosystem makes.
func (n Number) AsDecimal() Decimal {
	switch n.kind {
	case KindInt:
		return DecimalFromInt64(n.i)
	case KindDecimal:
		return n.d
	default:
		d, _ := DecimalFromString(strconv.FormatFloat(n.f, 'g', -1, 64))
		return d
	}
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	switch n.kind {
	case KindInt:
		switch {
		case n.i < 0:
			return -1
		case n.i > 0:
			return 1
		default:
			return 0
		}
	case KindFloat:
		switch {
		case n.f < 0:
			return -1
		case n.f > 0:
			return 1
		default:
			return 0
		}
	default:
		return n.d.Sign()
	}
}

// IsNaN reports whether n is a float NaN.
func (n Number) IsNaN() bool { return n.kind == KindFloat && math.IsNaN(n.f) }

// IsInf reports whether n is a float +/-Inf.
func (n Number) IsInf() bool { return n.kind == KindFloat && math.IsInf(n.f, 0) }
