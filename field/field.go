// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package field implements arithmetic in the ring of residues modulo a
// modulus that is bound into the element type, along with square and cube
// root extraction when the modulus is prime.
//
// A modulus is declared once as a parameter type and every element carries
// that type, so elements of different fields cannot be mixed:
//
//	type f17 struct{}
//
//	func (f17) Modulus() bigint.Int[uint64] { return bigint.MustDecimal[uint64]("17") }
//
//	four := field.FromUint64[uint64, f17](4)
//	nine := field.FromUint64[uint64, f17](9)
//	sum := four.Add(nine) // 13 mod 17
//
// The reduction contexts derived from a modulus (Barrett reciprocal,
// Montgomery constants, primality) are computed on first use and cached per
// parameter type.
package field

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/colinrford/ctbignum/bigint"
	"github.com/colinrford/ctbignum/modular"
	"github.com/colinrford/ctbignum/prime"
)

// Params binds a modulus value to a type.  Implementations are typically
// empty struct types whose Modulus method returns a fixed value; the returned
// value must be at least 2 and identical across calls.
type Params[L bigint.Limb] interface {
	Modulus() bigint.Int[L]
}

// Element is a residue modulo the modulus carried by the parameter type P.
// The underlying value is always reduced into [0, m).  The zero value of the
// type is the additive identity.
type Element[L bigint.Limb, P Params[L]] struct {
	data bigint.Int[L]
}

// context carries the per-modulus precomputed state shared by every element
// of one parameter type.
type context[L bigint.Limb] struct {
	m       bigint.Int[L]
	mMinus1 bigint.Int[L]
	one     bigint.Int[L]
	barrett modular.Barrett[L]
	mont    *modular.Montgomery[L] // nil for an even modulus

	primeOnce sync.Once
	prime     bool
}

// contexts caches one context per parameter type.
var contexts sync.Map // reflect.Type -> *context[L]

// ctx returns the cached context for the parameter type P, deriving it from
// the modulus on first use.
func ctx[L bigint.Limb, P Params[L]]() *context[L] {
	key := reflect.TypeOf(*new(P))
	if v, ok := contexts.Load(key); ok {
		return v.(*context[L])
	}

	var params P
	m := params.Modulus()
	if m.Cmp(bigint.FromUint64[L](2)) < 0 {
		panic(fmt.Sprintf("field: modulus %s is below 2", m))
	}
	c := &context[L]{
		m:       m.Clone(),
		mMinus1: m.SubNoCarry(bigint.FromUint64[L](1)),
		one:     bigint.FromUint64[L](1).Resize(len(m)),
		barrett: modular.NewBarrett(m),
	}
	if m.Bit(0) == 1 {
		c.mont = modular.NewMontgomery(m)
	}
	actual, _ := contexts.LoadOrStore(key, c)
	return actual.(*context[L])
}

// isPrime reports whether the modulus is prime, evaluating the primality
// test once per parameter type.
func (c *context[L]) isPrime() bool {
	c.primeOnce.Do(func() {
		c.prime = prime.IsPrime(c.m)
	})
	return c.prime
}

// mul returns (a*b) mod m through the precomputed Barrett reciprocal.
func (c *context[L]) mul(a, b bigint.Int[L]) bigint.Int[L] {
	return c.barrett.Reduce(a.Mul(b))
}

// exp returns base^e mod m, in Montgomery form when the modulus is odd.
func (c *context[L]) exp(base, e bigint.Int[L]) bigint.Int[L] {
	if c.mont != nil {
		return c.mont.Exp(base, e)
	}
	return modular.Exp(base, e, c.m)
}

// value returns the reduced integer behind e, materializing the zero value
// of the element type as an all-zero integer of the modulus width.
func (e Element[L, P]) value(c *context[L]) bigint.Int[L] {
	if e.data == nil {
		return bigint.New[L](len(c.m))
	}
	return e.data
}

// New returns the element congruent to v.  The value may be of any width and
// is always reduced.
func New[L bigint.Limb, P Params[L]](v bigint.Int[L]) Element[L, P] {
	c := ctx[L, P]()
	return Element[L, P]{data: c.barrett.Reduce(v)}
}

// FromUint64 returns the element congruent to v.
func FromUint64[L bigint.Limb, P Params[L]](v uint64) Element[L, P] {
	return New[L, P](bigint.FromUint64[L](v))
}

// MustDecimal returns the element congruent to the decimal value in s and
// panics on malformed input.  It must only be called with hard-coded values.
func MustDecimal[L bigint.Limb, P Params[L]](s string) Element[L, P] {
	return New[L, P](bigint.MustDecimal[L](s))
}

// Zero returns the additive identity, 0 mod m.
func Zero[L bigint.Limb, P Params[L]]() Element[L, P] {
	c := ctx[L, P]()
	return Element[L, P]{data: bigint.New[L](len(c.m))}
}

// One returns the multiplicative identity, 1 mod m.
func One[L bigint.Limb, P Params[L]]() Element[L, P] {
	c := ctx[L, P]()
	return Element[L, P]{data: c.one.Clone()}
}

// Modulus returns the modulus of the field as a fixed-width integer.
func Modulus[L bigint.Limb, P Params[L]]() bigint.Int[L] {
	return ctx[L, P]().m.Clone()
}

// Add returns e+o mod m.
func (e Element[L, P]) Add(o Element[L, P]) Element[L, P] {
	c := ctx[L, P]()
	return Element[L, P]{data: modular.Add(e.value(c), o.value(c), c.m)}
}

// Sub returns e-o mod m.
func (e Element[L, P]) Sub(o Element[L, P]) Element[L, P] {
	c := ctx[L, P]()
	return Element[L, P]{data: modular.Sub(e.value(c), o.value(c), c.m)}
}

// Mul returns e*o mod m.
func (e Element[L, P]) Mul(o Element[L, P]) Element[L, P] {
	c := ctx[L, P]()
	return Element[L, P]{data: c.mul(e.value(c), o.value(c))}
}

// Neg returns the additive inverse (m-e) mod m, which is 0 for a zero
// element.
func (e Element[L, P]) Neg() Element[L, P] {
	c := ctx[L, P]()
	v := e.value(c)
	if v.IsZero() {
		return Zero[L, P]()
	}
	return Element[L, P]{data: c.m.SubNoCarry(v)}
}

// Inv returns the multiplicative inverse of e.  It panics when no inverse
// exists, which for a prime modulus only happens for the zero element;
// callers that cannot rule that out must check IsZero first.
func (e Element[L, P]) Inv() Element[L, P] {
	c := ctx[L, P]()
	inv, ok := modular.Inv(e.value(c), c.m)
	if !ok {
		panic("field: element is not invertible")
	}
	return Element[L, P]{data: inv}
}

// Div returns e multiplied by the inverse of o.  It panics when o is not
// invertible.
func (e Element[L, P]) Div(o Element[L, P]) Element[L, P] {
	return e.Mul(o.Inv())
}

// Equal returns whether both elements represent the same residue.
func (e Element[L, P]) Equal(o Element[L, P]) bool {
	c := ctx[L, P]()
	return e.value(c).Eq(o.value(c))
}

// IsZero returns whether the element is the additive identity.
func (e Element[L, P]) IsZero() bool {
	return e.data == nil || e.data.IsZero()
}

// Data returns the reduced integer representation of the element.
func (e Element[L, P]) Data() bigint.Int[L] {
	return e.value(ctx[L, P]()).Clone()
}

// BigInt returns the reduced integer representation of the element.  It is
// structurally identical to Data and exists for callers that read better as
// an explicit conversion.
func (e Element[L, P]) BigInt() bigint.Int[L] {
	return e.Data()
}

// String returns the decimal representation of the element.
func (e Element[L, P]) String() string {
	return e.value(ctx[L, P]()).String()
}

// Format implements fmt.Formatter by delegating to the underlying integer,
// so elements render in decimal with %d, %s, and %v and in hexadecimal with
// %x and %X.
func (e Element[L, P]) Format(s fmt.State, verb rune) {
	e.value(ctx[L, P]()).Format(s, verb)
}
