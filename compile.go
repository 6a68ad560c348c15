package numfmt

import (
	"fmt"
	"unicode/utf8"
)

// CompilePattern compiles a user-supplied CLDR pattern string (spec.md §6's
// pattern alphabet: 0 # , . E + % ‰ ¤ '…' ;  *X) into an immutable Meta.
// Known patterns should be precompiled with this function at startup so
// formatting never pays the parse cost (spec.md §9); Formatter caches the
// result per locale and pattern.
//
// The pattern compiler is explicitly out of scope for this module (spec.md
// §1 treats it as a black box); this implementation exists only as the
// minimal supporting infrastructure the pipeline needs to exercise
// user-supplied patterns, grounded on
// other_examples/tdewolff-locale/numbers.go's DecimalFormatter.Format (a
// single left-to-right token walk over the same pattern alphabet) and on
// the teacher's lex.go two-stage lex/parse split.
func CompilePattern(pattern string) (*Meta, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrPatternCompile)
	}

	subs := splitSubPatterns(tokenizeAll(pattern))
	if len(subs) == 0 || len(subs) > 2 {
		return nil, fmt.Errorf("%w: expected 1 or 2 sub-patterns, got %d", ErrPatternCompile, len(subs))
	}

	pos, posMeta, err := compileSubPattern(subs[0])
	if err != nil {
		return nil, fmt.Errorf("%w: positive sub-pattern: %w", ErrPatternCompile, err)
	}

	m := posMeta
	m.Format.Positive = pos

	if len(subs) == 2 {
		neg, _, err := compileSubPattern(subs[1])
		if err != nil {
			return nil, fmt.Errorf("%w: negative sub-pattern: %w", ErrPatternCompile, err)
		}
		m.Format.Negative = neg
	}

	return &m, nil
}

func tokenizeAll(s string) []item {
	l := newLexer(s)
	var items []item
	for {
		it := l.nextItem()
		if it.typ == itemEOF {
			return items
		}
		items = append(items, it)
	}
}

func splitSubPatterns(items []item) [][]item {
	var subs [][]item
	start := 0
	for i, it := range items {
		if it.typ == itemSepSub {
			subs = append(subs, items[start:i])
			start = i + 1
		}
	}
	subs = append(subs, items[start:])
	return subs
}

func isNumItem(it item) bool {
	switch it.typ {
	case itemDigit0, itemDigitOpt, itemDigitLit, itemGroup, itemDecimal:
		return true
	}
	return false
}

// compileSubPattern compiles one positive-or-negative sub-pattern. The
// returned Meta carries the fields derived from the numeric run (digit
// ranges, grouping, exponent, rounding increment) plus the multiplier and
// padding taken from the surrounding '%', '‰' and '*X' items; the caller
// assembles Format.Positive/Negative separately.
func compileSubPattern(items []item) ([]Token, Meta, error) {
	start, end, err := findNumericRun(items)
	if err != nil {
		return nil, Meta{}, err
	}

	m, numTokens, err := compileNumericRun(items[start:end])
	if err != nil {
		return nil, Meta{}, err
	}

	var tokens []Token
	tokens = append(tokens, decorationTokens(items[:start])...)
	tokens = append(tokens, numTokens...)
	tokens = append(tokens, decorationTokens(items[end:])...)

	for _, it := range items {
		switch it.typ {
		case itemPadStart:
			if it.val != "" {
				m.PaddingChar = []rune(it.val)[0]
			}
		case itemPercent:
			m.Multiplier = 100
		case itemPermille:
			m.Multiplier = 1000
		}
	}
	m.PaddingLength = inferPadWidth(items, m.PaddingChar)

	return tokens, m, nil
}

// findNumericRun locates the maximal contiguous run of numeric-alphabet
// items (digits, grouping commas, the decimal point, and an attached
// exponent marker) that forms the pattern's single number specifier.
func findNumericRun(items []item) (start, end int, err error) {
	start = -1
	for i, it := range items {
		if isNumItem(it) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, 0, fmt.Errorf("no digit placeholder in pattern")
	}

	end = start
	for end < len(items) {
		it := items[end]
		switch {
		case isNumItem(it):
			end++
		case it.typ == itemExponent:
			end++
		case it.typ == itemPlus && end > start && items[end-1].typ == itemExponent:
			end++
		default:
			return start, end, nil
		}
	}
	return start, end, nil
}

// compileNumericRun parses the digit/group/decimal/exponent structure of a
// numeric run into the Meta fields described in spec.md §3-4, plus the
// single TokFormat placeholder token.
func compileNumericRun(items []item) (Meta, []Token, error) {
	expIdx := -1
	for i, it := range items {
		if it.typ == itemExponent {
			expIdx = i
			break
		}
	}

	mantissa := items
	var exponentItems []item
	if expIdx >= 0 {
		mantissa = items[:expIdx]
		exponentItems = items[expIdx+1:]
	}

	decIdx := -1
	for i, it := range mantissa {
		if it.typ == itemDecimal {
			decIdx = i
			break
		}
	}

	intItems := mantissa
	var fracItems []item
	if decIdx >= 0 {
		intItems = mantissa[:decIdx]
		fracItems = mantissa[decIdx+1:]
	}

	integerDigits, grouping := compileIntegerSpec(intItems)
	fracMin, fracMax := compileFractionSpec(fracItems)
	roundingIncrement := roundingIncrementLiteral(intItems, fracItems)

	var expDigits int
	var expSign bool
	if expIdx >= 0 {
		rest := exponentItems
		if len(rest) > 0 && rest[0].typ == itemPlus {
			expSign = true
			rest = rest[1:]
		}
		for _, it := range rest {
			if it.typ != itemDigit0 {
				return Meta{}, nil, fmt.Errorf("invalid exponent specifier")
			}
			expDigits++
		}
		if expDigits == 0 {
			return Meta{}, nil, fmt.Errorf("exponent marker with no digits")
		}
	}

	m := Meta{
		IntegerDigits:    integerDigits,
		FractionalDigits: DigitRange{Min: fracMin, Max: fracMax},
		Grouping:         grouping,
		ExponentDigits:   expDigits,
		ExponentSign:     expSign,
		Multiplier:       1,
		Rounding:         roundingIncrement,
	}
	return m, []Token{{Kind: TokFormat}}, nil
}

// roundingIncrementLiteral implements CLDR's rounding-increment pattern rule
// (spec.md §8's "#,##6.00" -> round to nearest 6 scenario): when the
// numeric run's digit positions are not all '0'/'#', the literal digits
// (grouping commas ignored, decimal point preserved) read as a decimal
// number give the rounding increment. A pattern with no itemDigitLit
// (every digit position is '0' or '#') yields the zero Decimal, meaning
// "no nearest-increment rounding" (IsZero, per meta.go's Rounding field).
func roundingIncrementLiteral(intItems, fracItems []item) Decimal {
	hasLiteral := false
	var b []byte
	for _, it := range intItems {
		switch it.typ {
		case itemDigit0, itemDigitOpt:
			b = append(b, '0')
		case itemDigitLit:
			hasLiteral = true
			b = append(b, it.val[0])
		}
	}
	if len(fracItems) > 0 {
		b = append(b, '.')
		for _, it := range fracItems {
			switch it.typ {
			case itemDigit0, itemDigitOpt:
				b = append(b, '0')
			case itemDigitLit:
				hasLiteral = true
				b = append(b, it.val[0])
			}
		}
	}
	if !hasLiteral {
		return Decimal{}
	}
	d, ok := DecimalFromString(string(b))
	if !ok {
		return Decimal{}
	}
	return d
}

// compileIntegerSpec derives {min,max} and the two-level Grouping from the
// integer-side item run. min is the count of required digits (at least 1);
// max is the total digit count when every position is required, else 0
// (unbounded). first is the length of the last comma-delimited segment;
// rest is the length of the segment before it when there are three or
// more segments, else equal to first.
func compileIntegerSpec(items []item) (DigitRange, Grouping) {
	var segments [][2]int // [required zero count, optional hash count] per comma-delimited segment
	var zeros, hashes int
	flush := func() {
		segments = append(segments, [2]int{zeros, hashes})
		zeros, hashes = 0, 0
	}

	sawComma := false
	for _, it := range items {
		switch it.typ {
		case itemDigit0, itemDigitLit:
			zeros++
		case itemDigitOpt:
			hashes++
		case itemGroup:
			sawComma = true
			flush()
		}
	}
	flush()

	totalZeros, totalDigits := 0, 0
	for _, s := range segments {
		totalZeros += s[0]
		totalDigits += s[0] + s[1]
	}

	min := totalZeros
	if min == 0 {
		min = 1 // spec invariant: integer is never empty, minimum single "0"
	}
	max := 0
	allRequired := true
	for _, s := range segments {
		if s[1] > 0 {
			allRequired = false
		}
	}
	if allRequired && totalDigits > 0 {
		max = totalDigits
	}

	var grouping Grouping
	if sawComma && len(segments) >= 2 {
		last := segments[len(segments)-1]
		first := last[0] + last[1]
		rest := first
		if len(segments) >= 3 {
			prev := segments[len(segments)-2]
			rest = prev[0] + prev[1]
		}
		grouping.Integer = GroupSize{First: first, Rest: rest}
	}

	return DigitRange{Min: min, Max: max}, grouping
}

// compileFractionSpec derives {min,max} from the fraction-side item run:
// min counts required '0's, max counts every digit placeholder.
func compileFractionSpec(items []item) (min, max int) {
	for _, it := range items {
		switch it.typ {
		case itemDigit0, itemDigitLit:
			min++
			max++
		case itemDigitOpt:
			max++
		}
	}
	return min, max
}

// decorationTokens converts the non-numeric items surrounding the numeric
// run into the Token alphabet, merging adjacent literal runs and counting
// repeated '¤' into a single currency-width token (spec.md §4.7, §6).
func decorationTokens(items []item) []Token {
	var tokens []Token
	var lit []rune
	flushLit := func() {
		if len(lit) > 0 {
			tokens = append(tokens, Token{Kind: TokLiteral, Text: string(lit)})
			lit = lit[:0]
		}
	}

	for i := 0; i < len(items); i++ {
		it := items[i]
		switch it.typ {
		case itemLiteral:
			lit = append(lit, []rune(it.val)...)
		case itemPlus:
			flushLit()
			tokens = append(tokens, Token{Kind: TokPlus})
		case itemPercent:
			flushLit()
			tokens = append(tokens, Token{Kind: TokPercent})
		case itemPermille:
			flushLit()
			tokens = append(tokens, Token{Kind: TokPermille})
		case itemPadStart:
			flushLit()
			tokens = append(tokens, Token{Kind: TokPad})
		case itemCurrency:
			flushLit()
			width := 1
			for i+1 < len(items) && items[i+1].typ == itemCurrency {
				width++
				i++
			}
			if width > 4 {
				width = 4
			}
			tokens = append(tokens, Token{Kind: TokCurrency, Width: width})
		default:
			// Digit, grouping, decimal or exponent items outside the
			// single numeric run are dropped.
		}
	}
	flushLit()
	return tokens
}

// inferPadWidth computes Meta.PaddingLength when a *X pad marker is
// present: the pattern's nominal rune width (its own text, minus the two
// runes of the *X marker itself) becomes the target width that §4.7's
// padding step fills up to. Returns 0 (no padding) when no pad marker is
// present.
func inferPadWidth(items []item, padChar rune) int {
	if padChar == 0 {
		return 0
	}
	width := 0
	for _, it := range items {
		switch it.typ {
		case itemPadStart:
			// the marker itself does not count toward the nominal width
		default:
			width += utf8.RuneCountInString(it.val)
		}
	}
	return width
}
