package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_numberToTuple(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name         string
		input        string
		wantInteger  string
		wantFraction string
	}{
		{name: "integer", input: "1234", wantInteger: "1234", wantFraction: ""},
		{name: "fraction", input: "12.34", wantInteger: "12", wantFraction: "34"},
		{name: "pure fraction pads integer zero", input: "0.5", wantInteger: "0", wantFraction: "5"},
		{name: "fraction shorter than exponent magnitude", input: "0.0004", wantInteger: "0", wantFraction: "0004"},
		{name: "trailing zeros from positive exponent", input: "1.2e2", wantInteger: "120", wantFraction: ""},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, ok := DecimalFromString(test.input)
			assert.True(t, ok)

			tup := numberToTuple(FromDecimal(d), d.Sign())
			assert.Equal(t, test.wantInteger, string(tup.integer))
			assert.Equal(t, test.wantFraction, string(tup.fraction))
		})
	}
}

func Test_digitTuple_isZeroBody(t *testing.T) {
	t.Parallel()

	assert.True(t, digitTuple{integer: []byte("0"), fraction: []byte("00")}.isZeroBody())
	assert.False(t, digitTuple{integer: []byte("0"), fraction: []byte("01")}.isZeroBody())
	assert.False(t, digitTuple{integer: []byte("10")}.isZeroBody())
}
