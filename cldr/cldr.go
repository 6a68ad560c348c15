// Package cldr is the formatter's external collaborator: it owns locale
// symbols, numbering-system digit tables, currency records and the plural
// engine. Loading and validating a real CLDR JSON bundle is explicitly out
// of scope (spec.md §1); this package instead ships a small, hand-written
// default bundle sufficient to exercise every pipeline feature, behind the
// same Context shape a full loader would populate.
//
// Grounded on _examples/translate-agent-mf2's locale-scoped function
// signatures (numberFunc(..., locale language.Tag)) and on
// other_examples/tdewolff-locale's locales map + bojanz-currency's currency
// table, reworked as a single immutable, concurrency-safe Context instead
// of package-level globals.
package cldr

import (
	"sort"

	"golang.org/x/text/language"
)

// Context owns every locale-scoped table the formatter consults. It holds
// no mutable state after construction and is safe to share across any
// number of goroutines, per spec.md §5.
type Context struct {
	locales    map[string]*Locale
	currencies map[string]*Currency
	numSystems map[string]NumberSystem
	defaultTag language.Tag
}

// NewContext builds a Context pre-populated with the default bundle
// (DefaultLocales, DefaultCurrencies, DefaultNumberSystems). Callers that
// load a real CLDR bundle elsewhere can build their own Context with
// NewContextFrom instead.
func NewContext() *Context {
	return NewContextFrom(DefaultLocales(), DefaultCurrencies(), DefaultNumberSystems())
}

// NewContextFrom builds a Context from caller-supplied tables. locales and
// currencies are keyed by BCP-47 tag string / ISO 4217 code respectively.
func NewContextFrom(locales map[string]*Locale, currencies map[string]*Currency, numSystems map[string]NumberSystem) *Context {
	return &Context{
		locales:    locales,
		currencies: currencies,
		numSystems: numSystems,
		defaultTag: language.English,
	}
}

// Locale resolves tag to a *Locale, falling back to its parent tags (e.g.
// "en-US" -> "en") and finally to the context default, the same fallback
// chain language.Tag.Parent offers.
func (c *Context) Locale(tag language.Tag) (*Locale, bool) {
	for t := tag; ; {
		if l, ok := c.locales[t.String()]; ok {
			return l, true
		}
		parent := t.Parent()
		if parent == t || parent == language.Und {
			break
		}
		t = parent
	}
	if l, ok := c.locales[c.defaultTag.String()]; ok {
		return l, false
	}
	return nil, false
}

// NumberSystem resolves a numbering-system id (e.g. "latn", "arab") to its
// digit table.
func (c *Context) NumberSystem(id string) (NumberSystem, bool) {
	ns, ok := c.numSystems[id]
	return ns, ok
}

// Currency resolves a 3-letter ISO 4217 code to its record.
func (c *Context) Currency(code string) (*Currency, bool) {
	cur, ok := c.currencies[code]
	return cur, ok
}

// KnownLocales returns every configured locale tag, sorted, for diagnostics
// and tests.
func (c *Context) KnownLocales() []string {
	out := make([]string, 0, len(c.locales))
	for k := range c.locales {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
