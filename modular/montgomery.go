// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package modular

import (
	"github.com/colinrford/ctbignum/bigint"
)

// Montgomery performs multiplication and exponentiation against a fixed odd
// modulus in Montgomery form, where a value x is represented by
// x*R mod m with R = 2^(N*W) for an N-limb modulus.  Multiplication in this
// form replaces the quotient estimation of ordinary reduction with W-bit
// shifts and a single final conditional subtraction, which is the documented
// data-dependent branch.  The zero value is not usable; use NewMontgomery.
type Montgomery[L bigint.Limb] struct {
	m      bigint.Int[L] // modulus, n limbs
	n      int           // declared limb count of m
	mprime L             // -m^(-1) mod 2^W
	rsq    bigint.Int[L] // R^2 mod m
	one    bigint.Int[L] // 1 at the width of m
}

// NewMontgomery returns a Montgomery context for the given modulus.  The
// modulus must be odd so that it is coprime to the radix; an even or zero
// modulus panics.
func NewMontgomery[L bigint.Limb](m bigint.Int[L]) *Montgomery[L] {
	if m.IsZero() || m.Bit(0) == 0 {
		panic("modular: montgomery modulus must be odd")
	}
	n := len(m)
	w := bigint.LimbBits[L]()

	// Compute m^(-1) mod 2^W by Newton iteration on the 2-adic inverse.
	// For odd m0 the seed m0 is already correct to 3 bits and every
	// iteration doubles the number of correct bits.
	m0 := m[0]
	inv := m0
	for correctBits := 3; correctBits < w; correctBits *= 2 {
		inv *= 2 - m0*inv
	}

	// R mod m, then R^2 mod m by squaring.
	radixPow := bigint.New[L](n + 1)
	radixPow[n] = 1
	rmod := radixPow.Mod(m)

	return &Montgomery[L]{
		m:      m.Clone(),
		n:      n,
		mprime: -inv,
		rsq:    rmod.Mul(rmod).Mod(m),
		one:    bigint.FromUint64[L](1).Resize(n),
	}
}

// Modulus returns the modulus the context was built for.
func (mt *Montgomery[L]) Modulus() bigint.Int[L] {
	return mt.m.Clone()
}

// Mul returns x*y*R^(-1) mod m for x and y in [0, m).  When both operands
// are in Montgomery form the result is the Montgomery form of the product.
//
// The word-by-word reduction adds u*m*2^(i*W) for each limb i with u chosen
// so the low limb cancels; the per-limb work is therefore independent of the
// operand values and only the final subtraction is conditional.
func (mt *Montgomery[L]) Mul(x, y bigint.Int[L]) bigint.Int[L] {
	n := mt.n
	t := x.Mul(y).Resize(2*n + 1)
	for i := 0; i < n; i++ {
		u := t[i] * mt.mprime
		var carry L
		for j := 0; j < n; j++ {
			hi, lo := bigint.MulWide(u, mt.m[j])
			var c L
			lo, c = bigint.AddCarry(lo, carry, 0)
			carry = hi + c
			t[i+j], c = bigint.AddCarry(t[i+j], lo, 0)
			carry += c
		}
		for j := i + n; j < len(t); j++ {
			t[j], carry = bigint.AddCarry(t[j], carry, 0)
		}
	}

	// The high half is below 2m, so at most one subtraction remains.
	u := bigint.FromLimbs(t[n:])
	if u.Cmp(mt.m) >= 0 {
		u = u.SubNoCarry(mt.m)
	}
	return u.Resize(n)
}

// ToMont returns a*R mod m, the Montgomery form of a.  The value must be in
// [0, m).
func (mt *Montgomery[L]) ToMont(a bigint.Int[L]) bigint.Int[L] {
	return mt.Mul(a.Resize(mt.n), mt.rsq)
}

// FromMont returns x*R^(-1) mod m, converting a value out of Montgomery
// form.
func (mt *Montgomery[L]) FromMont(x bigint.Int[L]) bigint.Int[L] {
	return mt.Mul(x.Resize(mt.n), mt.one)
}

// Exp returns base^exp mod m for a canonical (non-Montgomery) base, carrying
// out the square-and-multiply chain entirely in Montgomery form.  The
// exponent may be of any width; an exponent of zero yields 1 mod m.
func (mt *Montgomery[L]) Exp(base, exp bigint.Int[L]) bigint.Int[L] {
	b := mt.ToMont(base.Mod(mt.m))
	r := mt.Mul(mt.rsq, mt.one) // R mod m, the Montgomery form of 1
	for i := exp.BitLen() - 1; i >= 0; i-- {
		r = mt.Mul(r, r)
		if exp.Bit(i) == 1 {
			r = mt.Mul(r, b)
		}
	}
	return mt.FromMont(r)
}
