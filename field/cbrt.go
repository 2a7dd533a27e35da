// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"github.com/colinrford/ctbignum/bigint"
	"github.com/colinrford/ctbignum/modular"
)

// Cbrt returns a cube root of the element along with whether one was found.
// No root is reported when the modulus fails the primality gate or, for
// m = 1 (mod 3), when the element is not a cubic residue.  When three roots
// exist, which one is returned is unspecified.
//
// For m = 2 (mod 3) cubing is a bijection and the unique root is the direct
// exponentiation by (2m-1)/3.  For m = 1 (mod 3) the residue classes with
// m = 4 or 7 (mod 9) still admit a single exponentiation; the remaining
// m = 1 (mod 9) case walks the 3-Sylow subgroup the same way Tonelli-Shanks
// walks the 2-Sylow subgroup for square roots.
func (e Element[L, P]) Cbrt() (Element[L, P], bool) {
	c := ctx[L, P]()
	if !c.isPrime() {
		return Element[L, P]{}, false
	}
	a := e.value(c)
	if a.IsZero() {
		return Zero[L, P](), true
	}
	// Cubing is the identity in GF(2) and GF(3).
	if c.m.EqUint64(2) || c.m.EqUint64(3) {
		return e, true
	}

	three := bigint.FromUint64[L](3)
	if c.m.ModUint64(3) == 2 {
		// gcd(3, m-1) = 1, so the root is unique: a^((2m-1)/3).
		exp := c.m.Add(c.m).SubNoCarry(c.one).Div(three).Quotient
		return Element[L, P]{data: c.exp(a, exp)}, true
	}

	// m = 1 (mod 3): cube roots exist only for cubic residues, identified by
	// a^((m-1)/3) = 1.
	third := c.mMinus1.Div(three).Quotient
	if !c.exp(a, third).EqUint64(1) {
		return Element[L, P]{}, false
	}

	switch c.m.ModUint64(9) {
	case 4:
		exp := c.m.Add(c.m).Add(c.one).Div(bigint.FromUint64[L](9)).Quotient
		return Element[L, P]{data: c.exp(a, exp)}, true
	case 7:
		exp := c.m.Add(bigint.FromUint64[L](2)).Div(bigint.FromUint64[L](9)).Quotient
		return Element[L, P]{data: c.exp(a, exp)}, true
	}

	root, ok := c.cbrtSylow(a)
	if !ok {
		return Element[L, P]{}, false
	}
	return Element[L, P]{data: root}, true
}

// cbrtSylow computes a cube root of the cubic residue a for a prime modulus
// m = 1 (mod 9).
//
// With m-1 = 3^s * t and 3 not dividing t, an exponentiation by roughly t/3
// yields a trial root x whose error x^3/a lies in the 3-Sylow subgroup
// generated by K = g^t for a cubic non-residue g.  The discrete logarithm of
// the error with respect to K is extracted base-3 digit by digit against the
// primitive cube root of unity, and dividing x by K^(log/3) cancels the
// error.
func (c *context[L]) cbrtSylow(a bigint.Int[L]) (bigint.Int[L], bool) {
	three := bigint.FromUint64[L](3)

	// m-1 = 3^s * t with 3 not dividing t; s >= 2 when m = 1 (mod 9).
	s := 0
	t := c.mMinus1.Clone()
	for t.ModUint64(3) == 0 {
		t = t.Div(three).Quotient
		s++
	}

	// Smallest cubic non-residue and the generator K of the 3-Sylow
	// subgroup.
	third := c.mMinus1.Div(three).Quotient
	g := bigint.FromUint64[L](2)
	for c.exp(g, third).EqUint64(1) {
		g = g.AddNoCarry(bigint.FromUint64[L](1))
	}
	k := c.exp(g, t)
	kinv, ok := modular.Inv(k, c.m)
	if !ok {
		return nil, false
	}

	// Trial root: exponent (2t+1)/3 or (t+1)/3 depending on t mod 3, so
	// that x^3 = a * a^(2t) or a * a^t respectively.
	var x bigint.Int[L]
	if t.ModUint64(3) == 1 {
		x = c.exp(a, t.Add(t).Add(c.one).Div(three).Quotient)
	} else {
		x = c.exp(a, t.Add(c.one).Div(three).Quotient)
	}

	ainv, ok := modular.Inv(a, c.m)
	if !ok {
		return nil, false
	}
	errTerm := c.mul(c.mul(c.mul(x, x), x), ainv)
	if errTerm.EqUint64(1) {
		return x, true
	}

	// omega = K^(3^(s-1)) is a primitive cube root of unity.
	omega := k
	for j := 0; j < s-1; j++ {
		omega = c.cube(omega)
	}
	omega2 := c.mul(omega, omega)

	// Extract the base-3 digits of log_K(errTerm).  At digit i the residual
	// r satisfies r^(3^(s-1-i)) = omega^d_i, and known digits are cleared
	// with powers of K^(-1).  The lowest digit is zero because the error is
	// a cube, so the accumulated logarithm divides by 3 exactly.
	r := errTerm
	dlog := bigint.New[L](len(c.m))
	pow3 := c.one.Clone()
	kinvPow := kinv
	for i := 0; i < s; i++ {
		u := r
		for j := 0; j < s-1-i; j++ {
			u = c.cube(u)
		}

		var digit int
		switch {
		case u.EqUint64(1):
			digit = 0
		case u.Eq(omega):
			digit = 1
		case u.Eq(omega2):
			digit = 2
		default:
			// The error escaped the subgroup, which cannot happen for a
			// cubic residue of a prime modulus.
			return nil, false
		}

		if digit != 0 {
			term := pow3
			factor := kinvPow
			if digit == 2 {
				term = pow3.Add(pow3).Resize(len(c.m))
				factor = c.mul(kinvPow, kinvPow)
			}
			dlog = dlog.Add(term).Resize(len(c.m))
			r = c.mul(r, factor)
		}

		pow3 = pow3.Add(pow3).Add(pow3).Resize(len(c.m))
		kinvPow = c.cube(kinvPow)
	}

	correction := c.exp(kinv, dlog.Div(three).Quotient)
	return c.mul(x, correction), true
}

// cube returns v^3 mod m.
func (c *context[L]) cube(v bigint.Int[L]) bigint.Int[L] {
	return c.mul(c.mul(v, v), v)
}
