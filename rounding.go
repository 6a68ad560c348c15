package numfmt

import "math/big"

// RoundingMode selects how a value exactly halfway between two candidates
// (or any value, for the directed modes) is rounded. Every rounding step in
// the kernel takes a RoundingMode and applies it consistently.
type RoundingMode uint8

const (
	// HalfEven rounds to the nearest value; ties round to the even digit
	// (banker's rounding). This is CLDR's and IEEE-754's default.
	HalfEven RoundingMode = iota
	// HalfUp rounds ties away from zero.
	HalfUp
	// HalfDown rounds ties toward zero.
	HalfDown
	// Up rounds away from zero, always.
	Up
	// Down rounds toward zero, always (truncation).
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
)

// Abs returns the absolute value of n, polymorphic over Number's variants.
func Abs(n Number) Number {
	switch n.kind {
	case KindInt:
		if n.i < 0 {
			return Int(-n.i)
		}
		return n
	case KindFloat:
		if n.f < 0 {
			return Float(-n.f)
		}
		return n
	default:
		return FromDecimal(n.d.Abs())
	}
}

// Multiply returns n * factor. factor == 1 is a no-op and returns n
// unchanged (no allocation, no precision change). Decimal multiplication is
// exact; Int and Float use native multiplication.
func Multiply(n Number, factor int) Number {
	if factor == 1 {
		return n
	}
	switch n.kind {
	case KindInt:
		return Int(n.i * int64(factor))
	case KindFloat:
		return Float(n.f * float64(factor))
	default:
		return FromDecimal(n.d.Mul(DecimalFromInt64(int64(factor))))
	}
}

// roundBigInt divides |coef| by |divisor| rounding the quotient per mode,
// returning a non-negative result. coef and divisor must both be
// non-negative; neg carries the sign of the original value and determines
// the direction for the directed modes.
func roundBigInt(coef, divisor *big.Int, neg bool, mode RoundingMode) *big.Int {
	if divisor.Sign() == 0 {
		return new(big.Int).Set(coef)
	}
	q, r := new(big.Int).QuoRem(coef, divisor, new(big.Int))
	if r.Sign() == 0 {
		return q
	}

	twiceR := new(big.Int).Mul(r, big.NewInt(2))
	cmp := twiceR.Cmp(divisor) // <0 below half, 0 exactly half, >0 above half

	roundUp := false
	switch mode {
	case Up:
		roundUp = true
	case Down:
		roundUp = false
	case Ceiling:
		roundUp = !neg
	case Floor:
		roundUp = neg
	case HalfUp:
		roundUp = cmp >= 0
	case HalfDown:
		roundUp = cmp > 0
	case HalfEven:
		if cmp > 0 {
			roundUp = true
		} else if cmp == 0 {
			roundUp = q.Bit(0) == 1
		}
	}

	if roundUp {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// RoundToNearest rounds n to the nearest multiple of incr. incr == 0 is the
// skip sentinel (spec invariant: round_to_nearest(n, 0, mode) == n). For
// integer Number inputs the result is truncated back to an integer Number.
func RoundToNearest(n Number, incr Decimal, mode RoundingMode) Number {
	if incr.IsZero() {
		return n
	}

	d := n.AsDecimal()
	exp := d.exp
	if incr.exp < exp {
		exp = incr.exp
	}
	numC := d.rescale(exp).Coefficient()
	divC := incr.rescale(exp).Coefficient()
	numC.Abs(numC)
	divC.Abs(divC)

	q := roundBigInt(numC, divC, d.Sign() < 0, mode)
	result := NewDecimal(q, 0).Mul(incr.Abs())
	if d.Sign() < 0 {
		result = result.Neg()
	}

	if n.kind == KindInt {
		c := new(big.Int).Set(result.Coefficient())
		if result.exp >= 0 {
			c.Mul(c, pow10(result.exp))
		} else {
			c.Quo(c, pow10(-result.exp))
		}
		return Int(c.Int64())
	}
	return FromDecimal(result)
}

// RoundSignificant rounds n to k significant digits: drop the
// NumDigits()-k trailing digits of the coefficient, rounding per mode, and
// fold the dropped digits back into the exponent. Exact for Decimal. k <=
// 0 is a no-op, as is a value that already has k or fewer digits.
func RoundSignificant(n Number, k int, mode RoundingMode) Number {
	if k <= 0 {
		return n
	}

	d := n.AsDecimal()
	if d.IsZero() {
		return n
	}

	drop := d.NumDigits() - k
	if drop <= 0 {
		return n
	}

	coef := new(big.Int).Abs(d.Coefficient())
	rounded := roundBigInt(coef, pow10(drop), d.Sign() < 0, mode)
	result := NewDecimal(rounded, d.exp+drop)
	if d.Sign() < 0 {
		result = result.Neg()
	}

	if n.kind == KindInt {
		return Int(result.rescale(0).Coefficient().Int64())
	}
	return FromDecimal(result)
}

// MantissaExponent decomposes n = m * 10^e with 1 <= |m| < 10 (or m == 0,
// e == 0).
func MantissaExponent(n Number) (mantissa Number, exp int) {
	d := n.AsDecimal()
	if d.IsZero() {
		return FromDecimal(d), 0
	}
	digits := d.NumDigits()
	e := digits - 1 + d.exp
	m := d.MulPow10(-e)
	return FromDecimal(m), e
}

// RoundFractional rounds n to max decimal places. It is a no-op if n is
// already integral or if max < 0. Scientific patterns do not reach it
// through roundForMeta; formatValue calls it on the mantissa instead.
func RoundFractional(n Number, max int, mode RoundingMode) Number {
	if max < 0 || n.IsInteger() {
		return n
	}
	incr := NewDecimal(big.NewInt(1), -max)
	return RoundToNearest(n, incr, mode)
}
