// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// Limb is the constraint satisfied by the unsigned integer types that may
// serve as the machine word of an Int.  The default and fastest choice on
// modern hardware is uint64; the narrower widths exist so that algorithms can
// be exercised with many limbs on small values.
type Limb interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// limbBits returns the width W of the limb type in bits.
func limbBits[L Limb]() int {
	return bits.OnesCount64(uint64(^L(0)))
}

// LimbBits returns the width in bits of the given limb type.
func LimbBits[L Limb]() int {
	return limbBits[L]()
}

// AddCarry returns the sum of a+b+cin along with the carry out such that
// a+b+cin = cout*2^W + sum.  The carry input must be 0 or 1; the carry out is
// then guaranteed to be 0 or 1.
func AddCarry[L Limb](a, b, cin L) (sum, cout L) {
	return addc(a, b, cin)
}

// SubBorrow returns the difference of a-b-bin along with the borrow out such
// that a-b-bin = diff - bout*2^W.  The borrow input must be 0 or 1; the
// borrow out is then guaranteed to be 0 or 1.
func SubBorrow[L Limb](a, b, bin L) (diff, bout L) {
	return subb(a, b, bin)
}

// MulWide returns the full 2W-bit product of a*b split into its high and low
// limbs such that a*b = hi*2^W + lo.
func MulWide[L Limb](a, b L) (hi, lo L) {
	return wmul(a, b)
}

// addc returns the sum of a+b+cin along with the carry out such that
// a+b+cin = cout*2^W + sum.  The carry input and output are guaranteed to be
// 0 or 1 when the carry input is 0 or 1.
//
// The width dispatch below is resolved per type instantiation; no branch in
// this file depends on operand values.
func addc[L Limb](a, b, cin L) (sum, cout L) {
	if limbBits[L]() == 64 {
		s, c := bits.Add64(uint64(a), uint64(b), uint64(cin))
		return L(s), L(c)
	}
	t := uint64(a) + uint64(b) + uint64(cin)
	return L(t), L(t >> limbBits[L]())
}

// subb returns the difference of a-b-bin along with the borrow out such that
// a-b-bin = diff - bout*2^W.  The borrow input and output are guaranteed to be
// 0 or 1 when the borrow input is 0 or 1.
func subb[L Limb](a, b, bin L) (diff, bout L) {
	if limbBits[L]() == 64 {
		d, bo := bits.Sub64(uint64(a), uint64(b), uint64(bin))
		return L(d), L(bo)
	}
	t := uint64(a) - uint64(b) - uint64(bin)
	return L(t), L((t >> limbBits[L]()) & 1)
}

// wmul returns the full 2W-bit product of a*b split into its high and low
// limbs such that a*b = hi*2^W + lo.
func wmul[L Limb](a, b L) (hi, lo L) {
	if limbBits[L]() == 64 {
		h, l := bits.Mul64(uint64(a), uint64(b))
		return L(h), L(l)
	}
	t := uint64(a) * uint64(b)
	return L(t >> limbBits[L]()), L(t)
}

// mulAdd returns the full 2W-bit result of x*y + a + c split into its high and
// low limbs.  The result cannot overflow two limbs since
// (2^W-1)^2 + 2*(2^W-1) = 2^(2W) - 1.
func mulAdd[L Limb](x, y, a, c L) (hi, lo L) {
	hi, lo = wmul(x, y)
	var carry L
	lo, carry = addc(lo, a, 0)
	hi += carry
	lo, carry = addc(lo, c, 0)
	hi += carry
	return hi, lo
}

// clz returns the number of leading zero bits in the given limb.  The result
// is W for a zero limb.
func clz[L Limb](a L) int {
	return bits.LeadingZeros64(uint64(a)) - (64 - limbBits[L]())
}

// divWW returns the quotient and remainder of (hi*2^W + lo) / d.
//
// It requires hi < d so that the quotient fits a single limb and d != 0.
func divWW[L Limb](hi, lo, d L) (q, r L) {
	if limbBits[L]() == 64 {
		qq, rr := bits.Div64(uint64(hi), uint64(lo), uint64(d))
		return L(qq), L(rr)
	}
	t := uint64(hi)<<limbBits[L]() | uint64(lo)
	return L(t / uint64(d)), L(t % uint64(d))
}
