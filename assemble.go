package numfmt

import (
	"strings"
	"unicode/utf8"

	"go.expect.digital/numfmt/cldr"
)

// assembleContext bundles the locale-scoped lookups a single assemble call
// needs: the resolved Locale (signs, percent/permille glyphs), the resolved
// Currency (nil unless Options.Currency was set), and the already-selected
// plural keyword for the ¤¤¤ currency display name.
type assembleContext struct {
	locale     *cldr.Locale
	currency   *cldr.Currency
	pluralForm string
}

// assemble walks m's token sequence for sign isNeg and substitutes every
// token with its rendered text, per spec.md §4.7. body is the provisional
// number-body byte slice reassemble.go produced; it still carries the
// groupSep/decimalSep/exponentMarker sentinel bytes, resolved later by
// transliterate. bodyIsZero suppresses the minus sign, per spec.md §4.7's
// "no -0" rule.
func assemble(m *Meta, body []byte, isNeg, bodyIsZero bool, ctx assembleContext) string {
	tokens := m.Format.Positive
	switch {
	case isNeg && m.Format.Negative != nil:
		tokens = m.Format.Negative
	case isNeg:
		// No explicit negative sub-pattern: fabricate "minus + positive"
		// (spec.md §4.1).
		fabricated := make([]Token, 0, len(m.Format.Positive)+1)
		fabricated = append(fabricated, Token{Kind: TokMinus})
		fabricated = append(fabricated, m.Format.Positive...)
		tokens = fabricated
	}

	return assembleTokens(tokens, body, bodyIsZero, m.PaddingLength, m.PaddingChar, ctx)
}

func assembleTokens(tokens []Token, body []byte, bodyIsZero bool, padWidth int, padChar rune, ctx assembleContext) string {
	parts := make([]string, len(tokens))
	padIdx := -1

	for i, t := range tokens {
		switch t.Kind {
		case TokFormat:
			parts[i] = string(body)
		case TokPad:
			padIdx = i
		case TokPlus:
			parts[i] = ctx.locale.PlusSign
		case TokMinus:
			if !bodyIsZero {
				parts[i] = ctx.locale.MinusSign
			}
		case TokCurrency:
			parts[i] = currencyText(ctx, t.Width)
		case TokPercent:
			parts[i] = ctx.locale.PercentSign
		case TokPermille:
			parts[i] = ctx.locale.PermilleSign
		case TokLiteral:
			parts[i] = t.Text
		}
	}

	if padIdx >= 0 && padWidth > 0 {
		total := 0
		for _, p := range parts {
			total += utf8.RuneCountInString(p)
		}
		if need := padWidth - total; need > 0 {
			parts[padIdx] = strings.Repeat(string(padChar), need)
		}
	}

	return strings.Join(parts, "")
}

// currencyText resolves a TokCurrency of the given width (1=symbol, 2=ISO
// code, 3=plural display name, 4=narrow symbol), per spec.md §4.7, §6.
func currencyText(ctx assembleContext, width int) string {
	if ctx.currency == nil {
		return ""
	}
	switch width {
	case 2:
		return ctx.currency.Code
	case 3:
		return ctx.currency.DisplayName(ctx.pluralForm)
	case 4:
		if ctx.currency.NarrowSymbol != "" {
			return ctx.currency.NarrowSymbol
		}
		return ctx.currency.Symbol
	default:
		return ctx.currency.Symbol
	}
}
