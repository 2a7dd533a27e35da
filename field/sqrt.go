// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"github.com/colinrford/ctbignum/bigint"
)

// IsQuadraticResidue returns whether the element is a square in the field,
// computed through Euler's criterion.  Zero counts as a residue since it is
// the square of zero.  The result is only meaningful for a prime modulus.
func (e Element[L, P]) IsQuadraticResidue() bool {
	c := ctx[L, P]()
	a := e.value(c)
	if a.IsZero() {
		return true
	}
	return c.legendreIsOne(a)
}

// legendreIsOne returns whether a^((m-1)/2) = 1, which for a prime modulus
// and nonzero a identifies the quadratic residues.
func (c *context[L]) legendreIsOne(a bigint.Int[L]) bool {
	return c.exp(a, c.mMinus1.Rsh(1)).EqUint64(1)
}

// Sqrt returns a square root of the element along with whether one was
// found.  No root is reported when the modulus fails the primality gate or
// the element is a non-residue.  When a root r exists, -r is equally valid
// and which of the two is returned is unspecified.
//
// For m = 3 (mod 4) the root is a direct exponentiation by (m+1)/4;
// otherwise the full Tonelli-Shanks walk reduces the 2-adic valuation of an
// auxiliary element until the root emerges.
func (e Element[L, P]) Sqrt() (Element[L, P], bool) {
	c := ctx[L, P]()
	if !c.isPrime() {
		return Element[L, P]{}, false
	}
	a := e.value(c)
	if a.IsZero() {
		return Zero[L, P](), true
	}
	// Every element of GF(2) is its own square.
	if c.m.EqUint64(2) {
		return e, true
	}
	if !c.legendreIsOne(a) {
		return Element[L, P]{}, false
	}

	if c.m.ModUint64(4) == 3 {
		exp := c.m.Add(c.one).Rsh(2)
		return Element[L, P]{data: c.exp(a, exp)}, true
	}

	// Tonelli-Shanks for m = 1 (mod 4).  Write m-1 = 2^S * Q with Q odd and
	// seed the loop with the smallest quadratic non-residue.
	s := 0
	for c.mMinus1.Bit(s) == 0 {
		s++
	}
	q := c.mMinus1.Rsh(uint(s))

	z := bigint.FromUint64[L](2)
	for c.legendreIsOne(z) {
		z = z.AddNoCarry(bigint.FromUint64[L](1))
	}

	reach := s
	cc := c.exp(z, q)
	t := c.exp(a, q)
	r := c.exp(a, q.Add(c.one).Rsh(1))

	for !t.EqUint64(1) {
		// Find the least i with t^(2^i) = 1.  The walk strictly decreases
		// reach, so it terminates within S iterations.
		i := 0
		for t2 := t; !t2.EqUint64(1); i++ {
			if i == reach {
				return Element[L, P]{}, false
			}
			t2 = c.mul(t2, t2)
		}

		b := cc
		for j := 0; j < reach-i-1; j++ {
			b = c.mul(b, b)
		}
		reach = i
		cc = c.mul(b, b)
		t = c.mul(t, cc)
		r = c.mul(r, b)
	}
	return Element[L, P]{data: r}, true
}
