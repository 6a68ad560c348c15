package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func Test_Format_accounting_currency(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	opts := Options{Locale: language.English, Currency: "JPY"}

	got, err := f.Format(Int(1234), "accounting", opts)
	assert.NoError(t, err)
	assert.Equal(t, "¥1,234", got)

	got, err = f.Format(Int(-1234), "accounting", opts)
	assert.NoError(t, err)
	assert.Equal(t, "(¥1,234)", got)
}

func Test_Format_literalPattern(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	opts := Options{Locale: language.English}

	for _, test := range []struct {
		name    string
		n       Number
		pattern string
		want    string
	}{
		{name: "grouped with two decimals", n: Int(12345), pattern: "#,##0.00", want: "12,345.00"},
		{name: "fixed width clips to rightmost digits", n: Int(12345), pattern: "0000.00", want: "2345.00"},
		{name: "zero padded, no grouping", n: Int(12345), pattern: "000000", want: "012345"},
		{name: "Indic grouping", n: Int(1234567), pattern: "##,##,##0", want: "12,34,567"},
		{name: "rounding-increment literal digit rounds to nearest 6", n: Int(12345), pattern: "#,##6.00", want: "12,348.00"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := f.Format(test.n, test.pattern, opts)
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func Test_Format_standardStyle(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	opts := Options{Locale: language.English}

	d, _ := DecimalFromString("0.5")
	got, err := f.Format(FromDecimal(d), "standard", opts)
	assert.NoError(t, err)
	assert.Equal(t, "0.5", got)
}

func Test_Format_halfEvenSuppressesNegativeZero(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	opts := Options{Locale: language.English, RoundingMode: HalfEven}

	d, _ := DecimalFromString("-0.004")
	got, err := f.Format(FromDecimal(d), "0.##", opts)
	assert.NoError(t, err)
	assert.Equal(t, "0", got)
}

func Test_Format_percent(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	opts := Options{Locale: language.English}

	d, _ := DecimalFromString("0.5")
	got, err := f.Format(FromDecimal(d), "percent", opts)
	assert.NoError(t, err)
	assert.Equal(t, "50%", got)
}

func Test_Format_currencyPluralDisplayName(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	opts := Options{Locale: language.English, Currency: "USD"}

	got, err := f.Format(Int(2), "¤¤¤#,##0", opts)
	assert.NoError(t, err)
	assert.Equal(t, "US dollars2.00", got)
}

func Test_Format_indicGrouping(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	opts := Options{Locale: language.Hindi}

	got, err := f.Format(Int(1234567), "standard", opts)
	assert.NoError(t, err)
	assert.Equal(t, "12,34,567", got)
}

func Test_Format_nanAndInf(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	opts := Options{Locale: language.English}

	got, err := f.Format(Float(math.NaN()), "standard", opts)
	assert.NoError(t, err)
	assert.Equal(t, "NaN", got)

	got, err = f.Format(Float(math.Inf(1)), "standard", opts)
	assert.NoError(t, err)
	assert.Equal(t, "∞", got)

	got, err = f.Format(Float(math.Inf(-1)), "standard", opts)
	assert.NoError(t, err)
	assert.Equal(t, "-∞", got)
}

func Test_Format_unknownLocale(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	_, err := f.Format(Int(1), "standard", Options{Locale: language.MustParse("zu")})
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func Test_Format_unknownCurrency(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	_, err := f.Format(Int(1), "standard", Options{Locale: language.English, Currency: "XXX"})
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func Test_Format_fastPathMatchesGeneralPipeline(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	opts := Options{Locale: language.English}

	got, err := f.Format(Int(1234567), "standard", opts)
	assert.NoError(t, err)
	assert.Equal(t, "1,234,567", got)

	got, err = f.Format(Int(-42), "standard", opts)
	assert.NoError(t, err)
	assert.Equal(t, "-42", got)
}

func Test_Format_unknownFormatStyleName(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	_, err := f.Format(Int(1), "standart", Options{Locale: language.English})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func Test_Format_unknownFormatDistinctFromPatternCompileError(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)

	// A bare misspelled style name is reported as an unknown style ...
	_, err := f.Format(Int(1), "currancy", Options{Locale: language.English})
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.NotErrorIs(t, err, ErrPatternCompile)

	// ... while a pattern that merely fails to parse still reports
	// ErrPatternCompile, since it carries a pattern-alphabet marker ('%')
	// and so is never mistaken for a style-name reference.
	_, err = f.Format(Int(1), "%", Options{Locale: language.English})
	assert.ErrorIs(t, err, ErrPatternCompile)
}

func Test_Format_patternOptionForcesNegativeSubPattern(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	opts := Options{Locale: language.English, Currency: "JPY", Pattern: Negative}

	// A positive value, forced through the accounting style's negative
	// (parenthesized) sub-pattern: bodyIsZero-keyed "-0" suppression never
	// applies here since the body is non-zero, so the forced sub-pattern's
	// own tokens (parens, no minus sign) render unchanged.
	got, err := f.Format(Int(1234), "accounting", opts)
	assert.NoError(t, err)
	assert.Equal(t, "(¥1,234)", got)
}

func Test_Format_scientificRoundingHonoredWhenSetOnMeta(t *testing.T) {
	t.Parallel()

	f := NewFormatter(nil)
	locale, ok := f.ctx.Locale(language.English)
	assert.True(t, ok)
	ns, ok := f.ctx.NumberSystem("latn")
	assert.True(t, ok)

	meta, err := CompilePattern("0.00E+0")
	assert.NoError(t, err)
	meta.ScientificRounding = 3

	d, _ := DecimalFromString("123456")
	got := f.formatValue(FromDecimal(d), meta, locale, ns, nil, nil, Options{RoundingMode: HalfEven})
	assert.Equal(t, "1.23E+5", got)
}
