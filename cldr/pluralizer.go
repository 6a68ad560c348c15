package cldr

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Pluralizer resolves the CLDR cardinal plural form for a number, per the
// scoped dependency spec.md §9 calls for ("Pluralizer::pluralize(number,
// locale, count_forms) -> String"). Implementations select among
// {zero, one, two, few, many, other}.
type Pluralizer interface {
	PluralForm(locale language.Tag, integerPart []byte, fracDigits int) string
}

// DefaultPluralizer implements Pluralizer with golang.org/x/text's cardinal
// plural-rule engine, grounded directly on
// _examples/translate-agent-mf2/template/registry_number.go's selectKey
// (plural.Cardinal.MatchDigits) and registry.go's pluralFormString.
type DefaultPluralizer struct{}

// PluralForm matches integerPart (ASCII digits, no sign) against locale's
// cardinal plural rules. fracDigits is the count of visible fraction
// digits, needed because CLDR plural rules can depend on it (e.g. "1.0"
// is "other" in some locales while "1" is "one").
func (DefaultPluralizer) PluralForm(locale language.Tag, integerPart []byte, fracDigits int) string {
	// MatchDigits takes digit values 0-9, not ASCII characters.
	digits := make([]byte, len(integerPart))
	for i, c := range integerPart {
		digits[i] = c - '0'
	}
	form := plural.Cardinal.MatchDigits(locale, digits, len(digits), fracDigits)
	return formString(form)
}

// formString renders a plural.Form as the CLDR keyword string, the same
// switch as the teacher's pluralFormString.
func formString(f plural.Form) string {
	switch f {
	default:
		return "other"
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	}
}
