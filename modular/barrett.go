// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package modular

import (
	"github.com/colinrford/ctbignum/bigint"
)

// Barrett performs repeated reductions against a fixed modulus with a
// precomputed reciprocal so that no per-call division is needed.  The zero
// value is not usable; use NewBarrett.
type Barrett[L bigint.Limb] struct {
	m  bigint.Int[L] // modulus
	mu bigint.Int[L] // floor(2^(2*k*W) / m)
	k  int           // significant limbs of m
}

// NewBarrett returns a reducer for the given modulus with the reciprocal
// mu = floor(2^(2kW)/m) precomputed, where k is the number of significant
// limbs of m.  It panics when the modulus is zero.
func NewBarrett[L bigint.Limb](m bigint.Int[L]) Barrett[L] {
	if m.IsZero() {
		panic("modular: zero modulus")
	}
	w := bigint.LimbBits[L]()
	k := (m.BitLen() + w - 1) / w

	radixPow := bigint.New[L](2*k + 1)
	radixPow[2*k] = 1
	return Barrett[L]{
		m:  m.Clone(),
		mu: radixPow.Div(m).Quotient,
		k:  k,
	}
}

// Reduce returns x mod m.  The fast path covers any x below 2^(2kW), which
// includes every product of two reduced operands; wider values fall back to
// the division-based reduction so the result always agrees bit-exactly with
// x.Mod(m).
func (br Barrett[L]) Reduce(x bigint.Int[L]) bigint.Int[L] {
	w := uint(bigint.LimbBits[L]())
	k := br.k
	if x.BitLen() > 2*k*int(w) {
		return x.Mod(br.m).Resize(len(br.m))
	}

	// q = floor(floor(x / 2^((k-1)W)) * mu / 2^((k+1)W)) estimates the
	// quotient within two, and the remainder estimate r = x - q*m is
	// computed modulo 2^((k+1)W), which silently absorbs the borrow case.
	q := x.Rsh((uint(k) - 1) * w).Mul(br.mu).Rsh((uint(k) + 1) * w)
	r := truncWidth(x, k+1).SubNoCarry(q.Mul(br.m))
	for r.Cmp(br.m) >= 0 {
		r = r.SubNoCarry(br.m)
	}
	return r.Resize(len(br.m))
}

// Modulus returns the modulus the reducer was built for.
func (br Barrett[L]) Modulus() bigint.Int[L] {
	return br.m.Clone()
}

// truncWidth returns the low n limbs of x, zero-extending when x is
// narrower.  This is reduction modulo 2^(n*W).
func truncWidth[L bigint.Limb](x bigint.Int[L], n int) bigint.Int[L] {
	return bigint.FromLimbs(x[:min(len(x), n)]).Resize(n)
}
