// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package modular implements arithmetic over residues modulo a fixed-width
// modulus: addition, subtraction, multiplication, exponentiation, inversion,
// and precomputation-backed reduction in both Barrett and Montgomery form.
//
// Unless stated otherwise, operands of the residue operations must already be
// reduced into [0, m) and results are returned with the width of the modulus.
package modular

import (
	"github.com/colinrford/ctbignum/bigint"
)

// Add returns (a+b) mod m.  Both operands must be less than m.
func Add[L bigint.Limb](a, b, m bigint.Int[L]) bigint.Int[L] {
	sum := a.Add(b)
	if sum.Cmp(m) >= 0 {
		sum = sum.SubNoCarry(m)
	}
	return sum.Resize(len(m))
}

// Sub returns (a-b+m) mod m.  Both operands must be less than m.
func Sub[L bigint.Limb](a, b, m bigint.Int[L]) bigint.Int[L] {
	if a.Cmp(b) >= 0 {
		return a.SubNoCarry(b).Resize(len(m))
	}
	return m.SubNoCarry(b.SubNoCarry(a).Resize(len(m)))
}

// Mul returns (a*b) mod m via the full double-width product followed by a
// division-based reduction.  Callers multiplying repeatedly against the same
// modulus will be better served by a Barrett or Montgomery context.
func Mul[L bigint.Limb](a, b, m bigint.Int[L]) bigint.Int[L] {
	return a.Mul(b).Mod(m)
}

// Exp returns base^exp mod m using left-to-right binary exponentiation over
// the bits of the exponent, most-significant bit first.  The exponent may be
// of any width; an exponent of zero yields 1 mod m.
func Exp[L bigint.Limb](base, exp, m bigint.Int[L]) bigint.Int[L] {
	r := bigint.FromUint64[L](1).Mod(m)
	b := base.Mod(m)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		r = Mul(r, r, m)
		if exp.Bit(i) == 1 {
			r = Mul(r, b, m)
		}
	}
	return r
}

// Inv returns the multiplicative inverse of a modulo m such that
// (a * Inv(a, m)) mod m = 1, along with whether the inverse exists.  The
// inverse exists exactly when gcd(a, m) = 1.
//
// The computation is the extended Euclidean algorithm with the Bezout
// coefficient of a tracked modulo m, which keeps every intermediate value
// non-negative and at most the width of the modulus.
func Inv[L bigint.Limb](a, m bigint.Int[L]) (bigint.Int[L], bool) {
	if m.IsZero() {
		panic("modular: zero modulus")
	}
	r0, r1 := m.Clone(), a.Mod(m)
	x0 := bigint.New[L](len(m))
	x1 := bigint.FromUint64[L](1).Mod(m)
	for !r1.IsZero() {
		qr := r0.Div(r1)
		x0, x1 = x1, Sub(x0, Mul(qr.Quotient, x1, m), m)
		r0, r1 = r1, qr.Remainder
	}
	if !r0.EqUint64(1) {
		return nil, false
	}
	return x0, true
}
