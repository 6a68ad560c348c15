package numfmt

import (
	"fmt"

	"golang.org/x/text/language"
)

// Options configures a single Format call. Mirrors the teacher's
// template.Options validation idiom (fallback value + validator function)
// from registry_number.go, adapted to a plain struct since our option set
// is fixed by spec.md §6 rather than dynamically keyed.
type Options struct {
	// Locale selects the locale bundle consulted for symbols, currency
	// names, and plural rules. Required.
	Locale language.Tag
	// NumberSystem selects the digit glyph table, e.g. "latn", "arab",
	// "native". When empty, the locale's DefaultNumberSystem is used.
	NumberSystem string
	// Currency, if non-empty, is a 3-letter ISO 4217 code.
	Currency string
	// Cash selects cash-rounding currency digits/increment over the
	// regular ones.
	Cash bool
	// RoundingMode defaults to HalfEven.
	RoundingMode RoundingMode
	// FractionalDigits overrides the pattern/currency fractional-digit
	// range when non-nil.
	FractionalDigits *int
	// Pattern selects the positive or negative sub-pattern explicitly;
	// the zero value (Positive) means "derive from the sign of the
	// formatted number".
	Pattern Sign
}

// oneOf builds a membership validator, grounded on the teacher's
// registry.go Validate[T] + oneOf helper.
func oneOf[T comparable](allowed ...T) func(T) error {
	return func(v T) error {
		for _, a := range allowed {
			if a == v {
				return nil
			}
		}
		return fmt.Errorf("%w: %v not in %v", ErrInvalidOption, v, allowed)
	}
}
