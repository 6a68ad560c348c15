package numfmt

// direction selects which end of a digit vector the grouping algorithm
// measures groups from (spec.md §4.4).
type direction int

const (
	// reverseDir groups from the right (integer side): the short group, if
	// any, is leftmost.
	reverseDir direction = iota
	// forwardDir groups from the left (fraction side): the short group, if
	// any, is rightmost.
	forwardDir
)

// shape applies leading/trailing zero padding, max-integer truncation, and
// grouping to t, per spec.md §4.3-4.4. minGroupingDigits is the locale's
// minimum-grouping-digits setting folded into the `first` operand.
func shape(t digitTuple, m *Meta, minGroupingDigits int) digitTuple {
	// Leading zeros (integer side).
	if pad := m.IntegerDigits.Min - len(t.integer); pad > 0 {
		t.integer = append(repeatZero(pad), t.integer...)
	}

	// Strip trailing zero digits down to (but never below) the fraction's
	// minimum: rounding to a fixed number of places (RoundFractional)
	// leaves trailing zeros even when the pattern's extra digits are
	// optional ('#'), e.g. 0.500 for "#,##0.###" should display as 0.5.
	if i := len(t.fraction); i > m.FractionalDigits.Min {
		for i > m.FractionalDigits.Min && t.fraction[i-1] == '0' {
			i--
		}
		t.fraction = t.fraction[:i]
	}

	// Trailing zeros (fraction side): pad back up to the minimum required
	// digits, a no-op after the stripping above unless fraction started
	// out shorter than Min.
	if pad := m.FractionalDigits.Min - len(t.fraction); pad > 0 {
		t.fraction = append(t.fraction, repeatZero(pad)...)
	}

	// Max integer truncation: keep only the rightmost max digits.
	if m.IntegerDigits.Max > 0 && len(t.integer) > m.IntegerDigits.Max {
		t.integer = t.integer[len(t.integer)-m.IntegerDigits.Max:]
	}

	t.integer = group(t.integer, m.Grouping.Integer, minGroupingDigits, reverseDir)
	t.fraction = group(t.fraction, m.Grouping.Fraction, minGroupingDigits, forwardDir)

	return t
}

func repeatZero(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return b
}

// groupSep is the sentinel placeholder byte inserted between groups; it is
// never a valid digit byte, so it cannot collide with real content, and is
// replaced by the locale group glyph during transliteration (spec.md §4.4,
// §4.8). It is distinct from decimalSep (reassemble.go) so transliterate
// can replace each with its own locale glyph.
const groupSep = 0x01

// group inserts groupSep into d according to spec.md §4.4. It must run at
// most once per digit vector (pipeline invariant 5 in spec.md §8); callers
// never call group twice on the same slice.
func group(d []byte, g GroupSize, minGroupingDigits int, dir direction) []byte {
	if g.First == 0 && g.Rest == 0 {
		return d
	}

	effectiveMin := minGroupingDigits + g.First
	if len(d) < effectiveMin {
		return d
	}

	if g.First == g.Rest {
		return groupUniform(d, g.First, dir)
	}
	// Indic-style two-level grouping is defined for the integer side only.
	return groupTwoLevel(d, g)
}

func groupUniform(d []byte, size int, dir direction) []byte {
	n := len(d)
	var out []byte

	switch dir {
	case forwardDir:
		split := (n / size) * size
		for i := 0; i < split; i += size {
			if i > 0 {
				out = append(out, groupSep)
			}
			out = append(out, d[i:i+size]...)
		}
		if split < n {
			if split > 0 {
				out = append(out, groupSep)
			}
			out = append(out, d[split:]...)
		}
	default: // reverseDir
		short := n - (n/size)*size
		i := 0
		if short > 0 {
			out = append(out, d[:short]...)
			i = short
		}
		for ; i < n; i += size {
			if len(out) > 0 {
				out = append(out, groupSep)
			}
			out = append(out, d[i:i+size]...)
		}
	}
	return out
}

// groupTwoLevel peels the rightmost `first` digits as the last group and
// recurses on the remainder with {rest, rest}, per spec.md §4.4.
func groupTwoLevel(d []byte, g GroupSize) []byte {
	if len(d) <= g.First {
		return d
	}
	head := d[:len(d)-g.First]
	tail := d[len(d)-g.First:]
	head = groupUniform(head, g.Rest, reverseDir)
	return append(append(append([]byte{}, head...), groupSep), tail...)
}
