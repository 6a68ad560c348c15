package numfmt

import (
	"fmt"
	"math/big"
	"strconv"
	"sync"

	"go.expect.digital/numfmt/cldr"
	"golang.org/x/text/currency"
)

// Formatter is the pipeline's entry point: a *cldr.Context plus a
// compiled-pattern cache, so a named style or a repeated literal pattern is
// compiled at most once (spec.md §9). The zero value is not usable; build
// one with NewFormatter. A *Formatter is safe for concurrent use once
// constructed, same as the teacher's *Template/*Builder values.
type Formatter struct {
	ctx *cldr.Context

	mu    sync.Mutex
	cache map[string]*Meta
}

// NewFormatter builds a Formatter over ctx. A nil ctx uses cldr.NewContext's
// built-in default bundle.
func NewFormatter(ctx *cldr.Context) *Formatter {
	if ctx == nil {
		ctx = cldr.NewContext()
	}
	return &Formatter{ctx: ctx, cache: make(map[string]*Meta)}
}

var validRoundingMode = oneOf(HalfEven, HalfUp, HalfDown, Up, Down, Ceiling, Floor)

// Format renders n under patternOrName and opts. patternOrName is either a
// named style ("standard", "currency", "accounting", "percent",
// "scientific") resolved against the locale's Patterns table, or a literal
// CLDR pattern string compiled directly (spec.md §6).
func (f *Formatter) Format(n Number, patternOrName string, opts Options) (string, error) {
	if err := validRoundingMode(opts.RoundingMode); err != nil {
		return "", err
	}

	locale, found := f.ctx.Locale(opts.Locale)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrUnknownLocale, opts.Locale)
	}

	nsID := opts.NumberSystem
	if nsID == "" {
		nsID = locale.DefaultNumberSystem
	}
	ns, ok := f.ctx.NumberSystem(nsID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownNumberSystem, nsID)
	}

	var cur *cldr.Currency
	var curMeta *currencyMeta
	if opts.Currency != "" {
		// x/text/currency only validates ISO-4217 syntax/membership; our
		// own table (symbols, plural names, rounding increments) is still
		// the source of truth for the lookup below.
		if _, err := currency.ParseISO(opts.Currency); err != nil {
			return "", fmt.Errorf("%w: %s", ErrUnknownCurrency, opts.Currency)
		}

		cur, ok = f.ctx.Currency(opts.Currency)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownCurrency, opts.Currency)
		}
		curMeta = &currencyMeta{
			Digits:       cur.Digits,
			Rounding:     currencyRoundingIncrement(cur.Digits, cur.Rounding),
			CashDigits:   cur.CashDigits,
			CashRounding: currencyRoundingIncrement(cur.CashDigits, cur.CashRounding),
		}
	}

	meta, err := f.resolveMeta(locale, patternOrName)
	if err != nil {
		return "", err
	}

	if n.IsNaN() {
		return locale.NaNSymbol, nil
	}
	if n.IsInf() {
		if n.Sign() < 0 {
			return locale.MinusSign + locale.InfSymbol, nil
		}
		return locale.InfSymbol, nil
	}

	// The fast path is only equivalent to the full pipeline when
	// AdjustForCall would be a no-op (no currency, no fractional-digits
	// override), the negative sub-pattern is not forced, and the locale's
	// minimum grouping digits is at most 1 (the fast path always groups
	// four or more digits) (spec.md §4.9).
	if curMeta == nil && opts.FractionalDigits == nil && opts.Pattern != Negative && locale.MinimumGroupingDigits <= 1 {
		if out, ok := tryFastPath(n, meta, locale, ns); ok {
			return out, nil
		}
	}

	return f.formatValue(n, meta, locale, ns, cur, curMeta, opts), nil
}

// resolveMeta compiles (or returns the cached compilation of) patternOrName
// for locale.
func (f *Formatter) resolveMeta(locale *cldr.Locale, patternOrName string) (*Meta, error) {
	pattern := patternOrName
	if named, ok := locale.Patterns[patternOrName]; ok {
		pattern = named
	} else if isBareStyleName(patternOrName) {
		// patternOrName has the shape of a named style reference ("standard",
		// "currency", ...), not a literal CLDR pattern, but isn't defined for
		// this locale: report it distinctly from a malformed pattern string
		// (spec.md §7's UnknownFormat vs PatternCompileError).
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, patternOrName)
	}

	key := locale.Tag + "\x00" + pattern
	f.mu.Lock()
	if m, ok := f.cache[key]; ok {
		f.mu.Unlock()
		return m, nil
	}
	f.mu.Unlock()

	m, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.cache[key] = m
	f.mu.Unlock()
	return m, nil
}

// isBareStyleName reports whether s has the shape of a named-style
// reference (spec.md §6: "standard", "currency", "accounting", "percent",
// "scientific") rather than a literal CLDR pattern: every rune an ASCII
// letter, so it carries none of the pattern alphabet's digit, grouping,
// currency, or literal-quote markers. Every valid pattern needs at least
// one digit, ',' or '.' item (CompilePattern's findNumericRun requires
// it), so this check never misclassifies a real pattern.
func isBareStyleName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// formatValue runs the full pipeline: meta adjustment, arithmetic/rounding,
// digit-tuple construction, shaping, reassembly, format assembly and
// transliteration (spec.md §4.2-4.8).
func (f *Formatter) formatValue(n Number, meta *Meta, locale *cldr.Locale, ns cldr.NumberSystem, cur *cldr.Currency, curMeta *currencyMeta, opts Options) string {
	adjusted := meta.AdjustForCall(n, opts, curMeta)
	origSign := n.Sign()

	var t digitTuple
	var expDigits int

	if adjusted.ExponentDigits > 0 {
		rounded := roundForMeta(n, adjusted, opts.RoundingMode)
		mantissa, exp := MantissaExponent(rounded)
		// scientific_rounding (spec.md §4.5) is a separate, sig-fig
		// constraint on the mantissa; when present it replaces the plain
		// fractional-digit rounding rather than stacking with it.
		if adjusted.ScientificRounding > 0 {
			mantissa = RoundSignificant(mantissa, adjusted.ScientificRounding, opts.RoundingMode)
		} else {
			mantissa = RoundFractional(mantissa, adjusted.FractionalDigits.Max, opts.RoundingMode)
		}
		mantissa, exp = renormalizeMantissa(mantissa, exp)

		t = numberToTuple(mantissa, origSign)
		expDigits = adjusted.ExponentDigits
		t.expSign = 1
		if exp < 0 {
			t.expSign = -1
		}
		t.exponent = formatExponentDigits(absInt(exp), adjusted.ExponentDigits)
	} else {
		rounded := roundForMeta(n, adjusted, opts.RoundingMode)
		t = numberToTuple(rounded, origSign)
	}

	bodyIsZero := t.isZeroBody()

	// Plural form selection (for a ¤¤¤ currency token) reads the
	// unshaped integer/fraction digit vectors, before grouping separators
	// are interleaved into t.integer (spec.md §4.7, §9).
	var pluralForm string
	if cur != nil {
		pluralForm = locale.Pluralizer().PluralForm(opts.Locale, t.integer, len(t.fraction))
	}

	// A pattern's "E+0" exponent marker shows a plus sign on non-negative
	// exponents; plain "E0" omits it (spec.md §4.6). The minus sign is
	// always shown on a negative exponent regardless of this flag.
	expPlusSign := ""
	if adjusted.ExponentSign {
		expPlusSign = locale.PlusSign
	}

	t = shape(t, &adjusted, locale.MinimumGroupingDigits)
	body := reassemble(t, expDigits, expPlusSign, locale.MinusSign)

	// Options.Pattern lets a caller force the negative sub-pattern
	// regardless of origSign (spec.md §6); "-0" suppression still keys off
	// bodyIsZero below, so forcing Negative on a positive value composes
	// with it rather than needing a second suppression rule.
	isNeg := opts.Pattern == Negative || origSign < 0

	ctx := assembleContext{locale: locale, currency: cur, pluralForm: pluralForm}
	out := assemble(&adjusted, body, isNeg, bodyIsZero, ctx)

	return transliterate(out, locale, ns)
}

// currencyRoundingIncrement converts a Currency's {digits, roundingUnits}
// pair into a Decimal rounding increment. roundingUnits <= 1 means "round
// to `digits` places with no special increment" (the zero Decimal, which
// RoundToNearest treats as "skip"; the fraction is instead rounded via the
// plain FractionalDigits path). roundingUnits > 1 (e.g. CHF's nickel
// rounding) yields roundingUnits * 10^-digits.
func currencyRoundingIncrement(digits, roundingUnits int) Decimal {
	if roundingUnits <= 1 {
		return Decimal{}
	}
	return NewDecimal(big.NewInt(int64(roundingUnits)), -digits)
}

// roundForMeta applies m's multiplier and exactly one of the three rounding
// strategies, in the order spec.md §4.2/§4.5 fixes: nearest-increment,
// then significant-digits, then plain fractional rounding. Scientific
// notation (ExponentDigits > 0) rounds its mantissa separately, after the
// exponent split, so it never takes the plain fractional branch here.
func roundForMeta(n Number, m Meta, mode RoundingMode) Number {
	if m.Multiplier != 1 {
		n = Multiply(n, m.Multiplier)
	}

	switch {
	case !m.Rounding.IsZero():
		return RoundToNearest(n, m.Rounding, mode)
	case m.SignificantDigits.Max > 0:
		return RoundSignificant(n, m.SignificantDigits.Max, mode)
	case m.ExponentDigits > 0:
		return n
	default:
		return RoundFractional(n, m.FractionalDigits.Max, mode)
	}
}

// renormalizeMantissa corrects the rare case where rounding a scientific
// mantissa up (e.g. 9.996 -> 10.00) pushes it to two integer digits; it
// shifts the mantissa back into [1, 10) and bumps the exponent to match.
func renormalizeMantissa(mantissa Number, exp int) (Number, int) {
	d := mantissa.AsDecimal()
	if d.IsZero() {
		return mantissa, exp
	}
	if lead := d.NumDigits() + d.Exponent(); lead > 1 {
		return FromDecimal(d.MulPow10(-1)), exp + 1
	}
	return mantissa, exp
}

func formatExponentDigits(exp, minDigits int) []byte {
	s := strconv.Itoa(exp)
	if len(s) < minDigits {
		s = zeroPad(minDigits-len(s)) + s
	}
	return []byte(s)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
