// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// Div returns the quotient and remainder of n divided by d such that
// n = quotient*d + remainder with 0 <= remainder < d.
//
// The quotient width is max(Nn-Nd+1, 1) limbs and the remainder width is Nd
// limbs, where Nn and Nd are the declared operand widths.  In the unusual
// case where d carries enough leading zero limbs that the quotient does not
// fit the contractual width, the quotient is widened to hold the exact value
// rather than silently truncated.
//
// The implementation is base-2^W long division: the divisor is normalized so
// its most-significant bit is set, each quotient limb is estimated from the
// top three dividend limbs and top two divisor limbs, and the rare
// overestimate is repaired by adding the divisor back.
//
// Div panics when the divisor is zero.
func (n Int[L]) Div(d Int[L]) QuoRem[L] {
	dn := d.sigLimbs()
	if dn == 0 {
		panic("bigint: division by zero")
	}
	qWidth := max(len(n)-len(d)+1, 1)
	un := n.sigLimbs()

	// n < d: the quotient is zero and the remainder is n itself.
	if n.Cmp(d) < 0 {
		rem := make(Int[L], len(d))
		copy(rem, n[:min(len(n), len(d))])
		return QuoRem[L]{Quotient: make(Int[L], qWidth), Remainder: rem}
	}

	// Single significant divisor limb reduces to a chain of 2-by-1 limb
	// divisions from the most-significant end.
	if dn == 1 {
		q := make(Int[L], max(qWidth, un))
		var r L
		for i := un - 1; i >= 0; i-- {
			q[i], r = divWW(r, n[i], d[0])
		}
		rem := make(Int[L], len(d))
		rem[0] = r
		return QuoRem[L]{Quotient: q.fitWidth(qWidth), Remainder: rem}
	}

	// Normalize so the divisor's most-significant bit is set.  The dividend
	// gains one limb to hold the bits shifted out.
	shift := uint(clz(d[dn-1]))
	v := d[:dn].Lsh(shift)
	u := n[:un].Resize(un + 1)
	if shift != 0 {
		u = n[:un].LshWide(shift)[:un+1]
	}

	q := make(Int[L], max(qWidth, un-dn+1))
	for j := un - dn; j >= 0; j-- {
		// Estimate the quotient limb from the top limbs.  The invariant
		// u[j+dn] <= v[dn-1] holds throughout, so when they are equal the
		// estimate saturates at the maximum limb value.
		var qhat, rhat L
		rhatOverflow := false
		if u[j+dn] >= v[dn-1] {
			qhat = ^L(0)
			var c L
			rhat, c = addc(u[j+dn-1], v[dn-1], 0)
			rhatOverflow = c != 0
		} else {
			qhat, rhat = divWW(u[j+dn], u[j+dn-1], v[dn-1])
		}
		for !rhatOverflow {
			hi, lo := wmul(qhat, v[dn-2])
			if hi < rhat || (hi == rhat && lo <= u[j+dn-2]) {
				break
			}
			qhat--
			var c L
			rhat, c = addc(rhat, v[dn-1], 0)
			rhatOverflow = c != 0
		}

		// Multiply and subtract: u[j..j+dn] -= qhat*v.
		var mulCarry, borrow L
		for i := 0; i < dn; i++ {
			hi, lo := wmul(qhat, v[i])
			lo, c := addc(lo, mulCarry, 0)
			mulCarry = hi + c
			u[j+i], borrow = subb(u[j+i], lo, borrow)
		}
		u[j+dn], borrow = subb(u[j+dn], mulCarry, borrow)

		// The estimate can exceed the true quotient limb by one; repair by
		// adding the divisor back.
		if borrow != 0 {
			qhat--
			var c L
			for i := 0; i < dn; i++ {
				u[j+i], c = addc(u[j+i], v[i], c)
			}
			u[j+dn] += c
		}
		q[j] = qhat
	}

	rem := u[:dn].Rsh(shift).fitWidth(len(d))
	return QuoRem[L]{Quotient: q.fitWidth(qWidth), Remainder: rem}
}

// fitWidth returns x resized to n limbs when that loses no information and
// the minimal larger width otherwise.
func (x Int[L]) fitWidth(n int) Int[L] {
	return x.Resize(max(n, x.sigLimbs(), 1))
}

// Mod returns the remainder of x divided by m with the width of m.  It panics
// when m is zero.
func (x Int[L]) Mod(m Int[L]) Int[L] {
	return x.Div(m).Remainder
}

// ModUint64 returns the remainder of x divided by the given unsigned 64-bit
// integer.  It panics when d is zero.
func (x Int[L]) ModUint64(d uint64) uint64 {
	if d == 0 {
		panic("bigint: division by zero")
	}
	w := limbBits[L]()
	var r uint64
	for i := x.sigLimbs() - 1; i >= 0; i-- {
		hi := r >> (64 - w)
		lo := r<<w | uint64(x[i])
		r = bits.Rem64(hi, lo, d)
	}
	return r
}
