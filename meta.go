package numfmt

// DigitRange is a { min, max } digit-count constraint. For IntegerDigits,
// max == 0 means unbounded; for FractionalDigits it means no fraction
// digits; for SignificantDigits it means significant digits are not used.
type DigitRange struct {
	Min, Max int
}

// GroupSize is a two-level grouping spec: First is the size of the group
// closest to the decimal point, Rest applies to every group further out.
// {0, 0} means no grouping.
type GroupSize struct {
	First, Rest int
}

// Grouping holds the integer-side and fraction-side GroupSize.
type Grouping struct {
	Integer  GroupSize
	Fraction GroupSize
}

// Sign distinguishes the positive and negative sub-pattern of a Meta.
type Sign uint8

const (
	// Positive selects format.Positive.
	Positive Sign = iota
	// Negative selects format.Negative, or the fabricated "minus + positive"
	// sequence when Negative is nil.
	Negative
)

// TokenKind enumerates the token alphabet produced by the pattern
// compiler and consumed by assemble.go.
type TokenKind uint8

const (
	TokFormat   TokenKind = iota // the number body
	TokPad                      // pad-fill position
	TokPlus                     // locale plus sign
	TokMinus                    // locale minus sign (suppressed on zero body)
	TokCurrency                 // width 1..4, see Token.Width
	TokPercent
	TokPermille
	TokLiteral // Token.Text verbatim
)

// Token is one element of a compiled format's token sequence.
type Token struct {
	Kind  TokenKind
	Width int    // meaningful only for TokCurrency: 1=symbol 2=ISO 3=plural 4=narrow
	Text  string // meaningful only for TokLiteral
}

// Format holds the compiled positive and (optional) negative token
// sequences. Negative == nil means "same as Positive, prefixed by Minus".
type Format struct {
	Positive []Token
	Negative []Token
}

// Meta is the immutable, pattern-compiler output that drives every format
// call. It may be shared across goroutines; AdjustForCall clones only the
// small mutable fields that a particular call's options touch.
type Meta struct {
	Format              Format
	IntegerDigits       DigitRange
	FractionalDigits    DigitRange
	SignificantDigits   DigitRange
	ExponentDigits      int
	ExponentSign        bool
	ScientificRounding  int
	Multiplier          int
	Rounding            Decimal // zero value (IsZero()) means "no nearest-increment rounding"
	Grouping            Grouping
	PaddingLength       int
	PaddingChar         rune
}

// isStandardShape reports whether m is structurally the canonical
// "#,##0.###" meta used by the fast paths in fastpath.go.
func (m *Meta) isStandardShape() bool {
	return m.IntegerDigits == DigitRange{Min: 1, Max: 0} &&
		m.FractionalDigits == DigitRange{Min: 0, Max: 3} &&
		m.SignificantDigits == (DigitRange{}) &&
		m.ExponentDigits == 0 &&
		m.Multiplier == 1 &&
		m.Rounding.IsZero() &&
		m.Grouping.Integer == (GroupSize{First: 3, Rest: 3}) &&
		m.Grouping.Fraction == (GroupSize{}) &&
		m.PaddingLength == 0
}

// currencyMeta is the subset of a currency record that meta adjustment
// needs. It is built from cldr.Currency by format.go, keeping this package
// independent of the cldr package's locale-bundle types.
type currencyMeta struct {
	Digits       int
	Rounding     Decimal
	CashDigits   int
	CashRounding Decimal
}

// AdjustForCall folds currency fraction/rounding, significant-digit
// overrides, and a caller-supplied fractional-digits override into a
// per-call copy of m. The three steps run in this fixed order (spec §4.2).
func (m Meta) AdjustForCall(n Number, opts Options, cur *currencyMeta) Meta {
	// 1. Currency fraction.
	if cur != nil {
		digits, rounding := cur.Digits, cur.Rounding
		if opts.Cash {
			digits, rounding = cur.CashDigits, cur.CashRounding
		}
		m.FractionalDigits = DigitRange{Min: digits, Max: digits}
		m.Rounding = rounding
	}

	// 2. Significant-digit fraction.
	if m.SignificantDigits.Max != 0 && !n.IsInteger() {
		m.FractionalDigits = DigitRange{Min: 1, Max: 10}
	}

	// 3. Explicit fractional-digits override.
	if opts.FractionalDigits != nil {
		m.FractionalDigits = DigitRange{Min: *opts.FractionalDigits, Max: *opts.FractionalDigits}
	}

	return m
}
