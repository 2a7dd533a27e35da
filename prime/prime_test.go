// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prime

import (
	"math/big"
	"testing"

	"pgregory.net/rapid"

	"github.com/colinrford/ctbignum/bigint"
)

// TestIsPrimeKnownValues ensures known primes are accepted and known
// composites, including Carmichael numbers and strong pseudoprimes, are
// rejected.
func TestIsPrimeKnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		in   string // decimal candidate
		want bool   // expected primality
	}{{
		name: "zero",
		in:   "0",
		want: false,
	}, {
		name: "one",
		in:   "1",
		want: false,
	}, {
		name: "two",
		in:   "2",
		want: true,
	}, {
		name: "three",
		in:   "3",
		want: true,
	}, {
		name: "small odd composite",
		in:   "15",
		want: false,
	}, {
		name: "seventeen",
		in:   "17",
		want: true,
	}, {
		name: "sieve boundary prime",
		in:   "997",
		want: true,
	}, {
		name: "first prime above the sieve",
		in:   "1009",
		want: true,
	}, {
		name: "product of primes above the sieve",
		in:   "1018081", // 1009^2
		want: false,
	}, {
		name: "carmichael 561",
		in:   "561",
		want: false,
	}, {
		name: "carmichael 1729",
		in:   "1729",
		want: false,
	}, {
		name: "strong pseudoprime to bases 2..7",
		in:   "3215031751",
		want: false,
	}, {
		name: "fermat prime 65537",
		in:   "65537",
		want: true,
	}, {
		name: "mersenne prime 2^61-1",
		in:   "2305843009213693951",
		want: true,
	}, {
		name: "mersenne composite 2^67-1",
		in:   "147573952589676412927",
		want: false,
	}, {
		name: "secp256k1 field prime",
		in:   "115792089237316195423570985008687907853269984665640564039457584007908834671663",
		want: true,
	}, {
		name: "curve25519 field prime",
		in:   "57896044618658097711785492504343953926634992332820282019728792003956564819949",
		want: true,
	}, {
		name: "curve25519 prime plus two",
		in:   "57896044618658097711785492504343953926634992332820282019728792003956564819951",
		want: false,
	}}

	for _, test := range tests {
		if got := IsPrime(bigint.MustDecimal[uint64](test.in)); got != test.want {
			t.Errorf("%s: wrong answer -- got: %v want: %v", test.name, got,
				test.want)
		}
	}
}

// TestIsPrimeMatchesStdlib cross-checks the verdict against the stdlib
// probabilistic test over random 64-bit candidates.
func TestIsPrimeMatchesStdlib(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.Uint64().Draw(rt, "n")
		got := IsPrime(bigint.FromUint64[uint64](n))
		want := new(big.Int).SetUint64(n).ProbablyPrime(32)
		if got != want {
			rt.Fatalf("wrong answer for %d -- got %v want %v", n, got, want)
		}
	})
}

// TestIsPrimeWideCandidates exercises the random-witness path, which applies
// to candidates above 78 bits.
func TestIsPrimeWideCandidates(t *testing.T) {
	t.Parallel()

	// 2^89-1 is a Mersenne prime just above the deterministic range; the
	// square of 2^61-1 is a wide composite with no small factors.
	wide := bigint.MustDecimal[uint64]("618970019642690137449562111")
	if !IsPrime(wide) {
		t.Error("2^89-1 reported composite")
	}
	sq := bigint.MustDecimal[uint64]("2305843009213693951").Square()
	if IsPrime(sq) {
		t.Error("square of 2^61-1 reported prime")
	}
}

// TestIsPrimeNarrowLimbs ensures the verdicts are identical when the same
// values are represented with 8-bit limbs.
func TestIsPrimeNarrowLimbs(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"1729", "65537", "64513", "64511"} {
		wide := IsPrime(bigint.MustDecimal[uint64](v))
		narrow := IsPrime(bigint.MustDecimal[uint8](v))
		if wide != narrow {
			t.Errorf("limb width changed the verdict for %s: %v vs %v", v,
				wide, narrow)
		}
	}
}
