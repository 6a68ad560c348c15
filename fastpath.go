package numfmt

import (
	"strconv"
	"strings"

	"go.expect.digital/numfmt/cldr"
	"golang.org/x/exp/constraints"
)

// tryFastPath recognizes the common case spec.md §4.9 calls out: the
// canonical "standard" meta (grouping of 3, no fraction, no currency/
// percent/pad decoration) applied to a whole number. When it applies, the
// full tuple/shape/reassemble/assemble/transliterate pipeline is skipped
// entirely in favor of direct grouped-digit-string construction.
func tryFastPath(n Number, m *Meta, locale *cldr.Locale, ns cldr.NumberSystem) (string, bool) {
	if !m.isStandardShape() || m.Format.Negative != nil {
		return "", false
	}
	if len(m.Format.Positive) != 1 || m.Format.Positive[0].Kind != TokFormat {
		return "", false
	}

	switch n.Kind() {
	case KindInt:
		return fastStandardInt(n.i, locale, ns), true
	case KindFloat:
		if n.IsInteger() {
			return fastStandardInt(int64(n.f), locale, ns), true
		}
	}
	return "", false
}

// fastStandardInt renders v grouped in runs of three from the decimal
// point, locale's separator and sign, transliterated through ns — the
// fast-path equivalent of pattern "#,##0.###" applied to an integer.
// Grounded on the teacher's itoa-style direct-render helpers rather than
// the general pattern pipeline, generalized over any signed integer width
// via constraints.Signed so callers working with int32/int16/etc. values
// (not just the int64 that Number.Int wraps) share the same fast path.
func fastStandardInt[T constraints.Signed](v T, locale *cldr.Locale, ns cldr.NumberSystem) string {
	i := int64(v)
	neg := i < 0

	var u uint64
	if neg {
		u = uint64(-i)
	} else {
		u = uint64(i)
	}

	digits := strconv.FormatUint(u, 10)
	grouped := groupASCIIDigits(digits, locale.GroupSeparator, ns)

	if neg {
		return locale.MinusSign + grouped
	}
	return grouped
}

// groupASCIIDigits inserts sep every three digits from the right, mapping
// each digit through ns so the fast path stays correct for any numbering
// system, not only "latn".
func groupASCIIDigits(digits, sep string, ns cldr.NumberSystem) string {
	n := len(digits)
	if n <= 3 {
		return transliterateDigits(digits, ns)
	}

	var b strings.Builder
	first := n % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(transliterateDigits(digits[:first], ns))
	for i := first; i < n; i += 3 {
		b.WriteString(sep)
		b.WriteString(transliterateDigits(digits[i:i+3], ns))
	}
	return b.String()
}

func transliterateDigits(digits string, ns cldr.NumberSystem) string {
	var b strings.Builder
	b.Grow(len(digits))
	for _, r := range digits {
		b.WriteRune(ns.Glyph(int(r - '0')))
	}
	return b.String()
}
