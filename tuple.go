package numfmt

import "math/big"

// digitTuple is the pipeline's intermediate representation: a number split
// into sign, integer digits, fraction digits, and an optional exponent.
// Every byte in integer and fraction is an ASCII '0'..'9'. After shaping,
// integer is never empty (minimum single "0").
type digitTuple struct {
	sign     int // -1 or +1
	integer  []byte
	fraction []byte
	expSign  int // -1 or +1, meaningful only when len(exponent) > 0
	exponent []byte
}

// newDigitTuple splits a non-negative Decimal into raw integer/fraction
// digit bytes, with no padding, truncation or grouping applied yet.
func newDigitTuple(d Decimal, sign int) digitTuple {
	coef := new(big.Int).Abs(d.Coefficient())
	digits := coef.String()
	if coef.Sign() == 0 {
		digits = "0"
	}

	t := digitTuple{sign: sign}
	switch {
	case d.exp >= 0:
		t.integer = append([]byte(digits), make([]byte, d.exp)...)
		for i := len(digits); i < len(t.integer); i++ {
			t.integer[i] = '0'
		}
	case -d.exp >= len(digits):
		t.integer = []byte("0")
		t.fraction = append([]byte(nil), []byte(zeroPad(-d.exp-len(digits))+digits)...)
	default:
		split := len(digits) + d.exp
		t.integer = []byte(digits[:split])
		t.fraction = []byte(digits[split:])
	}
	if len(t.integer) == 0 {
		t.integer = []byte("0")
	}
	return t
}

func zeroPad(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

// numberToTuple converts a rounded Number into a digitTuple. sign is taken
// from the original (pre-rounding) value so that "-0.004" rounding to "0"
// still carries sign -1 into format assembly, where Minus is suppressed
// once the body is exactly "0" (spec §4.7).
func numberToTuple(n Number, origSign int) digitTuple {
	return newDigitTuple(n.AsDecimal(), origSign)
}

// isZeroBody reports whether t's rendered digits are exactly "0" (no
// fractional digits, or all-zero fractional digits), used to suppress a
// spurious "-0".
func (t digitTuple) isZeroBody() bool {
	for _, b := range t.integer {
		if b != '0' {
			return false
		}
	}
	for _, b := range t.fraction {
		if b != '0' {
			return false
		}
	}
	return true
}
