// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
	"strings"
)

// FromDecimal converts a string of decimal digits to an Int of the minimal
// width that holds the exact value.  It is the run-time counterpart of a
// numeric literal: package-level constants are typically declared as
// variables initialized with MustDecimal.
func FromDecimal[L Limb](s string) (Int[L], error) {
	if len(s) == 0 {
		return nil, makeError(ErrEmptyString, "decimal string is empty")
	}
	z := Int[L]{0}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			str := fmt.Sprintf("invalid decimal digit %q in %q", ch, s)
			return nil, makeError(ErrInvalidChar, str)
		}

		// z = z*10 + digit with the width growing to absorb the carry.
		carry := L(ch - '0')
		for j := range z {
			carry, z[j] = mulAdd(z[j], 10, carry, 0)
		}
		if carry != 0 {
			z = append(z, carry)
		}
	}
	return z, nil
}

// MustDecimal converts a string of decimal digits to an Int of minimal width
// and panics on malformed input.  It must only be called with hard-coded
// values.
func MustDecimal[L Limb](s string) Int[L] {
	z, err := FromDecimal[L](s)
	if err != nil {
		panic(err)
	}
	return z
}

// FromDecimalWidth converts a string of decimal digits to an Int of exactly n
// limbs, zero-extending as needed.  It returns ErrValueTooWide when the value
// does not fit the requested width.
func FromDecimalWidth[L Limb](s string, n int) (Int[L], error) {
	z, err := FromDecimal[L](s)
	if err != nil {
		return nil, err
	}
	if z.sigLimbs() > n {
		str := fmt.Sprintf("%s does not fit in %d limbs", s, n)
		return nil, makeError(ErrValueTooWide, str)
	}
	return z.Resize(n), nil
}

// decChunk returns the largest power of ten that fits a limb along with its
// number of decimal digits.
func decChunk[L Limb]() (L, int) {
	maxLimb := uint64(^L(0))
	pow, digits := uint64(1), 0
	for pow <= maxLimb/10 {
		pow *= 10
		digits++
	}
	return L(pow), digits
}

// String returns the decimal representation of the value.
func (x Int[L]) String() string {
	sig := x.sigLimbs()
	if sig == 0 {
		return "0"
	}

	// Convert limb-sized chunks at a time by repeated division by the
	// largest power of ten that fits a limb.
	chunk, digits := decChunk[L]()
	t := x[:sig].Clone()
	var groups []uint64
	for !t.IsZero() {
		var r L
		for i := len(t) - 1; i >= 0; i-- {
			t[i], r = divWW(r, t[i], chunk)
		}
		groups = append(groups, uint64(r))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", groups[len(groups)-1])
	for i := len(groups) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%0*d", digits, groups[i])
	}
	return sb.String()
}

// hexString returns the hexadecimal representation of the value without
// leading zeros.
func (x Int[L]) hexString(upper bool) string {
	sig := x.sigLimbs()
	if sig == 0 {
		return "0"
	}
	headVerb, tailVerb := "%x", "%0*x"
	if upper {
		headVerb, tailVerb = "%X", "%0*X"
	}
	hexDigits := limbBits[L]() / 4
	var sb strings.Builder
	fmt.Fprintf(&sb, headVerb, uint64(x[sig-1]))
	for i := sig - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, tailVerb, hexDigits, uint64(x[i]))
	}
	return sb.String()
}

// Format implements fmt.Formatter.  The %d, %s, and %v verbs render the
// decimal representation; %x and %X render hexadecimal.
func (x Int[L]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'd', 's', 'v':
		fmt.Fprint(s, x.String())
	case 'x':
		fmt.Fprint(s, x.hexString(false))
	case 'X':
		fmt.Fprint(s, x.hexString(true))
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, x.String())
	}
}
