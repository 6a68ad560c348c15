package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sep(parts ...string) []byte {
	var out []byte
	for i, p := range parts {
		if i > 0 {
			out = append(out, groupSep)
		}
		out = append(out, p...)
	}
	return out
}

func Test_group_uniform(t *testing.T) {
	t.Parallel()

	got := group([]byte("1234567"), GroupSize{First: 3, Rest: 3}, 1, reverseDir)
	assert.Equal(t, sep("1", "234", "567"), got)
}

func Test_group_indicTwoLevel(t *testing.T) {
	t.Parallel()

	got := group([]byte("1234567"), GroupSize{First: 3, Rest: 2}, 1, reverseDir)
	assert.Equal(t, sep("12", "34", "567"), got)
}

func Test_group_belowMinimumGroupingDigits(t *testing.T) {
	t.Parallel()

	// minGroupingDigits=2 raises the threshold to First+2=5 digits; a
	// 4-digit integer stays ungrouped.
	got := group([]byte("1234"), GroupSize{First: 3, Rest: 3}, 2, reverseDir)
	assert.Equal(t, []byte("1234"), got)
}

func Test_group_noGrouping(t *testing.T) {
	t.Parallel()

	got := group([]byte("1234567"), GroupSize{}, 1, reverseDir)
	assert.Equal(t, []byte("1234567"), got)
}

func Test_shape_leadingAndTrailingZeros(t *testing.T) {
	t.Parallel()

	m := &Meta{
		IntegerDigits:    DigitRange{Min: 6, Max: 0},
		FractionalDigits: DigitRange{Min: 2, Max: 2},
	}
	tup := digitTuple{sign: 1, integer: []byte("345"), fraction: []byte("1")}
	got := shape(tup, m, 1)

	assert.Equal(t, []byte("000345"), got.integer)
	assert.Equal(t, []byte("10"), got.fraction)
}

func Test_shape_maxIntegerTruncation(t *testing.T) {
	t.Parallel()

	m := &Meta{IntegerDigits: DigitRange{Min: 1, Max: 2}}
	tup := digitTuple{sign: 1, integer: []byte("12345")}
	got := shape(tup, m, 1)

	assert.Equal(t, []byte("45"), got.integer)
}
