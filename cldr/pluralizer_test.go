package cldr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func Test_DefaultPluralizer_PluralForm(t *testing.T) {
	t.Parallel()

	p := DefaultPluralizer{}

	for _, test := range []struct {
		name       string
		locale     language.Tag
		integer    string
		fracDigits int
		want       string
	}{
		{name: "english singular", locale: language.English, integer: "1", fracDigits: 0, want: "one"},
		{name: "english plural", locale: language.English, integer: "2", fracDigits: 0, want: "other"},
		{name: "english 1.0 is not singular", locale: language.English, integer: "1", fracDigits: 1, want: "other"},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := p.PluralForm(test.locale, []byte(test.integer), test.fracDigits)
			assert.Equal(t, test.want, got)
		})
	}
}
