// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

// Add returns the full sum of x and y.  The result is one limb wider than the
// wider operand so no carry is ever lost.
func (x Int[L]) Add(y Int[L]) Int[L] {
	n := max(len(x), len(y))
	z := make(Int[L], n+1)
	var carry L
	for i := 0; i < n; i++ {
		z[i], carry = addc(x.at(i), y.at(i), carry)
	}
	z[n] = carry
	return z
}

// AddNoCarry returns the sum of x and y reduced modulo 2^(N*W) where N is the
// width of x.  Any final carry is discarded and y is interpreted modulo the
// width of x, zero-extending when it is narrower.
func (x Int[L]) AddNoCarry(y Int[L]) Int[L] {
	z := make(Int[L], len(x))
	var carry L
	for i := range x {
		z[i], carry = addc(x[i], y.at(i), carry)
	}
	return z
}

// Sub returns the difference x-y with the width of x along with the final
// borrow.  The borrow is 0 when x >= y and 1 otherwise, in which case the
// returned limbs hold the two's complement of the difference modulo 2^(N*W).
func (x Int[L]) Sub(y Int[L]) (Int[L], L) {
	z := make(Int[L], len(x))
	var borrow L
	for i := range x {
		z[i], borrow = subb(x[i], y.at(i), borrow)
	}
	return z, borrow
}

// SubNoCarry returns the difference x-y reduced modulo 2^(N*W) where N is the
// width of x.  It is defined for any ordering of the operands: when y > x the
// result wraps to the two's complement of the difference.
func (x Int[L]) SubNoCarry(y Int[L]) Int[L] {
	z, _ := x.Sub(y)
	return z
}

// Mul returns the product of x and y using schoolbook multiplication.  The
// result is always exactly Na+Nb limbs where Na and Nb are the widths of the
// operands, regardless of leading zeros, so no overflow is possible.
func (x Int[L]) Mul(y Int[L]) Int[L] {
	z := make(Int[L], len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry L
		for j, yj := range y {
			carry, z[i+j] = mulAdd(xi, yj, z[i+j], carry)
		}
		z[i+len(y)] = carry
	}
	return z
}

// Square returns the product of x with itself.  The result is exactly twice
// the width of x and is identical to x.Mul(x).
func (x Int[L]) Square() Int[L] {
	return x.Mul(x)
}
