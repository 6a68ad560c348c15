package cldr

// Currency is a currency record: symbol widths, fraction-digit defaults,
// and the rounding increments for regular and cash display. Grounded on
// other_examples/bojanz-currency (Display, DefaultDigits, RoundingMode)
// and other_examples/tdewolff-locale/currency.go (cur.Digits, cur.Rounding,
// cur.Digits+AmountPrecision scale arithmetic).
type Currency struct {
	Code         string
	Symbol       string
	NarrowSymbol string // falls back to Symbol when empty (spec.md §4.7)
	Digits       int
	// Rounding is the regular rounding increment expressed in units of the
	// smallest display digit (e.g. 0 or 1 = "round to Digits places", 5 =
	// CHF-style nickel rounding). 0 and 1 are equivalent.
	Rounding int
	CashDigits   int
	CashRounding int
	// PluralNames maps a CLDR plural form ("one", "other", ...) to the
	// currency's long display name, consulted for the ¤¤¤ width.
	PluralNames map[string]string
}

// DefaultCurrencies returns a small built-in currency table covering a
// regular currency (USD), a zero-decimal currency (JPY), a currency with a
// non-trivial cash-rounding increment (CHF), and one more major currency
// (EUR). Every entry sets NarrowSymbol.
func DefaultCurrencies() map[string]*Currency {
	return map[string]*Currency{
		"USD": {
			Code: "USD", Symbol: "$", NarrowSymbol: "$",
			Digits: 2, Rounding: 0, CashDigits: 2, CashRounding: 0,
			PluralNames: map[string]string{"one": "US dollar", "other": "US dollars"},
		},
		"EUR": {
			Code: "EUR", Symbol: "€", NarrowSymbol: "€",
			Digits: 2, Rounding: 0, CashDigits: 2, CashRounding: 0,
			PluralNames: map[string]string{"one": "euro", "other": "euros"},
		},
		"JPY": {
			Code: "JPY", Symbol: "¥", NarrowSymbol: "¥",
			Digits: 0, Rounding: 0, CashDigits: 0, CashRounding: 0,
			PluralNames: map[string]string{"one": "Japanese yen", "other": "Japanese yen"},
		},
		"CHF": {
			Code: "CHF", Symbol: "CHF", NarrowSymbol: "CHF",
			Digits: 2, Rounding: 0, CashDigits: 2, CashRounding: 5,
			PluralNames: map[string]string{"one": "Swiss franc", "other": "Swiss francs"},
		},
	}
}

// DisplayName returns the long name for the plural form keyword form,
// falling back to the "other" form.
func (c *Currency) DisplayName(form string) string {
	if name, ok := c.PluralNames[form]; ok {
		return name
	}
	return c.PluralNames["other"]
}
