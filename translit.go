package numfmt

import (
	"strings"

	"go.expect.digital/numfmt/cldr"
)

// transliterate performs the single pass described in spec.md §4.8: every
// ASCII digit '0'-'9' is mapped through ns to the numbering system's glyph,
// and the three sentinel separator bytes (groupSep, decimalSep,
// exponentMarker) are replaced by locale's real separator/exponent glyphs.
// Everything else (currency symbols, literals, signs) passed through
// assemble.go is already final text and is copied verbatim.
func transliterate(s string, locale *cldr.Locale, ns cldr.NumberSystem) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch r {
		case groupSep:
			b.WriteString(locale.GroupSeparator)
		case decimalSep:
			b.WriteString(locale.DecimalSeparator)
		case exponentMarker:
			b.WriteString(locale.ExponentSeparator)
		default:
			if r >= '0' && r <= '9' {
				b.WriteRune(ns.Glyph(int(r - '0')))
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}
