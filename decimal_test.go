package numfmt

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DecimalFromString(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "1234", want: "1234"},
		{name: "negative", input: "-1234", want: "-1234"},
		{name: "fraction", input: "12.340", want: "12.340"},
		{name: "leading zero fraction", input: "0.004", want: "0.004"},
		{name: "negative fraction keeps its sign", input: "-0.004", want: "-0.004"},
		{name: "explicit plus", input: "+5", want: "5"},
		{name: "scientific", input: "3.1e2", want: "310"},
		{name: "garbage", input: "abc", wantErr: true},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, ok := DecimalFromString(test.input)
			if test.wantErr {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, test.want, d.String())
		})
	}
}

func Test_Decimal_Cmp(t *testing.T) {
	t.Parallel()

	a := NewDecimal(big.NewInt(100), -2) // 1.00
	b := NewDecimal(big.NewInt(1), 0)    // 1

	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, -1, a.Cmp(NewDecimal(big.NewInt(2), 0)))
	assert.Equal(t, 1, NewDecimal(big.NewInt(2), 0).Cmp(a))
}

func Test_Decimal_Mul(t *testing.T) {
	t.Parallel()

	a, _ := DecimalFromString("1.5")
	b, _ := DecimalFromString("-2")

	assert.Equal(t, "-3.0", a.Mul(b).String())
}

func Test_Decimal_NumDigits(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name  string
		input string
		want  int
	}{
		{name: "zero", input: "0", want: 1},
		{name: "single digit", input: "5", want: 1},
		{name: "multi digit", input: "12345", want: 5},
		{name: "fraction doesn't change coefficient digit count", input: "1.2345", want: 5},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, ok := DecimalFromString(test.input)
			assert.True(t, ok)
			assert.Equal(t, test.want, d.NumDigits())
		})
	}
}
