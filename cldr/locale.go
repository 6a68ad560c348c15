package cldr

// Locale holds the symbols and locale-specific sizing the pipeline needs
// once a Meta has already been compiled: separators, signs, and the
// minimum-grouping-digits threshold from spec.md §4.4. Grounded on
// other_examples/tdewolff-locale's per-locale table (DecimalSymbol,
// GroupSymbol) and bojanz-currency's currencyFormat (plusSign, minusSign,
// decimalSeparator, groupingSeparator).
type Locale struct {
	Tag string

	DecimalSeparator string
	GroupSeparator   string
	MinusSign        string
	PlusSign         string
	PercentSign      string
	PermilleSign     string
	ExponentSeparator string

	// NaNSymbol and InfSymbol are substituted for the digit body when the
	// input Number is NaN or +/-Inf (spec.md §7: "behavior on NaN/Infinity
	// is locale-defined").
	NaNSymbol string
	InfSymbol string

	// MinimumGroupingDigits is folded into the `first` operand before the
	// grouping algorithm's length check (spec.md §4.4).
	MinimumGroupingDigits int

	// DefaultNumberSystem is used when Options.NumberSystem is empty.
	DefaultNumberSystem string

	// Patterns maps a named style ("standard", "currency", "accounting",
	// "percent", "scientific") to its un-compiled CLDR pattern string.
	Patterns map[string]string

	// pluralizer resolves cardinal plural forms for this locale; see
	// pluralizer.go. Stored here because every call site that needs plural
	// selection already has the Locale in hand.
	pluralizer Pluralizer
}

// Pluralizer returns l's plural-rule engine, defaulting to
// DefaultPluralizer when none was set.
func (l *Locale) Pluralizer() Pluralizer {
	if l.pluralizer != nil {
		return l.pluralizer
	}
	return DefaultPluralizer{}
}

// WithPluralizer returns a copy of l using p for plural selection.
func (l *Locale) WithPluralizer(p Pluralizer) *Locale {
	cp := *l
	cp.pluralizer = p
	return &cp
}

// NumberSystem is a named mapping from decimal digit positions 0..9 to
// glyphs, e.g. "latn" = ASCII, "arab" = Arabic-Indic (spec.md glossary).
type NumberSystem struct {
	ID     string
	Digits [10]rune // index i holds the glyph for digit i
}

// Glyph returns the glyph for ASCII digit '0'+i.
func (ns NumberSystem) Glyph(i int) rune { return ns.Digits[i] }

// DefaultNumberSystems returns the built-in numbering systems. Only a
// representative subset ("latn" plus several non-Latin systems) is
// included since a full CLDR bundle's
// worth of numbering systems is out of scope; this is enough to exercise
// transliteration (spec.md §4.8) end to end.
func DefaultNumberSystems() map[string]NumberSystem {
	mk := func(id, digits string) NumberSystem {
		var ns NumberSystem
		ns.ID = id
		i := 0
		for _, r := range digits {
			ns.Digits[i] = r
			i++
		}
		return ns
	}
	return map[string]NumberSystem{
		"latn":    mk("latn", "0123456789"),
		"arab":    mk("arab", "٠١٢٣٤٥٦٧٨٩"),
		"arabext": mk("arabext", "۰۱۲۳۴۵۶۷۸۹"),
		"deva":    mk("deva", "०१२३४५६७८९"),
		"beng":    mk("beng", "০১২৩৪৫৬৭৮৯"),
		"mymr":    mk("mymr", "၀၁၂၃၄၅၆၇၈၉"),
		"thai":    mk("thai", "๐๑๒๓๔๕๖๗๘๙"),
		"fullwide": mk("fullwide", "0123456789"),
	}
}

// DefaultLocales returns a small built-in locale table: "root" (the CLDR
// fallback root) plus "en", "de", "fr", "hi" to exercise distinct
// decimal/group separators and Indic grouping.
func DefaultLocales() map[string]*Locale {
	root := &Locale{
		Tag:                   "root",
		DecimalSeparator:      ".",
		GroupSeparator:        ",",
		MinusSign:             "-",
		PlusSign:              "+",
		PercentSign:           "%",
		PermilleSign:          "‰",
		ExponentSeparator:     "E",
		NaNSymbol:             "NaN",
		InfSymbol:             "∞",
		MinimumGroupingDigits: 1,
		DefaultNumberSystem:   "latn",
		Patterns: map[string]string{
			"standard":   "#,##0.###",
			"currency":   "¤#,##0.00",
			"accounting": "¤#,##0.00;(¤#,##0.00)",
			"percent":    "#,##0%",
			"scientific": "#E0",
		},
	}

	en := clone(root)
	en.Tag = "en"

	de := clone(root)
	de.Tag = "de"
	de.DecimalSeparator = ","
	de.GroupSeparator = "."
	de.Patterns["currency"] = "#,##0.00 ¤"
	de.Patterns["accounting"] = "#,##0.00 ¤;-#,##0.00 ¤"

	fr := clone(root)
	fr.Tag = "fr"
	fr.DecimalSeparator = ","
	fr.GroupSeparator = " "
	fr.Patterns["currency"] = "#,##0.00 ¤"

	hi := clone(root)
	hi.Tag = "hi"
	hi.Patterns["standard"] = "##,##,##0.###"
	hi.Patterns["currency"] = "¤##,##,##0.00"

	return map[string]*Locale{
		"root": root,
		"en":   en,
		"de":   de,
		"fr":   fr,
		"hi":   hi,
	}
}

func clone(l *Locale) *Locale {
	cp := *l
	cp.Patterns = make(map[string]string, len(l.Patterns))
	for k, v := range l.Patterns {
		cp.Patterns[k] = v
	}
	return &cp
}
