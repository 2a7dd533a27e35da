// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prime implements probabilistic primality testing of fixed-width
// integers with a Miller-Rabin core.
package prime

import (
	"github.com/decred/dcrd/crypto/rand"
	"github.com/jrick/bitset"

	"github.com/colinrford/ctbignum/bigint"
	"github.com/colinrford/ctbignum/modular"
)

// trialDivisionBound is the exclusive upper bound of the small primes used to
// cheaply reject candidates with small factors before the Miller-Rabin
// rounds.
const trialDivisionBound = 1000

// smallPrimes lists every prime below trialDivisionBound, produced by a sieve
// of Eratosthenes at package load.
var smallPrimes = func() []uint64 {
	composite := bitset.NewBytes(trialDivisionBound)
	var primes []uint64
	for n := 2; n < trialDivisionBound; n++ {
		if composite.Get(n) {
			continue
		}
		primes = append(primes, uint64(n))
		for k := n * n; k < trialDivisionBound; k += n {
			composite.Set(k)
		}
	}
	return primes
}()

// deterministicWitnesses is a base set for which the Miller-Rabin test is
// known to be exact for all candidates below 2^78.
var deterministicWitnesses = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37,
}

// deterministicWitnessBits is the candidate bit length up to which the fixed
// witness set is exhaustive.  Wider candidates fall back to random
// witnesses.
const deterministicWitnessBits = 78

// randomRounds is the number of uniformly random witnesses tried for
// candidates too wide for the deterministic set.  The probability that a
// composite survives is at most 4^-randomRounds.
const randomRounds = 40

// IsPrime returns whether m is prime.  The answer is exact for candidates up
// to 78 bits; above that it is probabilistic with an error bound of 4^-40
// per call, using random witnesses drawn from the process CSPRNG.
func IsPrime[L bigint.Limb](m bigint.Int[L]) bool {
	// Values below 2 are not prime and the only even prime is 2.
	if m.Cmp(bigint.FromUint64[L](2)) < 0 {
		return false
	}
	if m.Bit(0) == 0 {
		return m.EqUint64(2)
	}

	// Trial division against the small odd primes.  A zero remainder means
	// the candidate is either that prime itself or composite.
	for _, p := range smallPrimes[1:] {
		if m.ModUint64(p) == 0 {
			return m.EqUint64(p)
		}
	}

	return millerRabin(m)
}

// millerRabin runs the Miller-Rabin witness loop for an odd candidate m > 3
// with no factors below trialDivisionBound.
func millerRabin[L bigint.Limb](m bigint.Int[L]) bool {
	one := bigint.FromUint64[L](1)
	mMinus1 := m.SubNoCarry(one)

	// Write m-1 = 2^s * d with d odd.
	s := 0
	for mMinus1.Bit(s) == 0 {
		s++
	}
	d := mMinus1.Rsh(uint(s))

	// The candidate is odd here, so the Montgomery form applies and carries
	// the bulk of the exponentiation work.
	mt := modular.NewMontgomery(m)

	tryWitness := func(a bigint.Int[L]) bool {
		a = a.Mod(m)
		if a.IsZero() {
			return true
		}
		x := mt.Exp(a, d)
		if x.EqUint64(1) || x.Eq(mMinus1) {
			return true
		}
		for r := 1; r < s; r++ {
			x = modular.Mul(x, x, m)
			if x.Eq(mMinus1) {
				return true
			}
		}
		return false
	}

	if m.BitLen() <= deterministicWitnessBits {
		for _, w := range deterministicWitnesses {
			if !tryWitness(bigint.FromUint64[L](w)) {
				return false
			}
		}
		return true
	}

	for i := 0; i < randomRounds; i++ {
		if !tryWitness(randWitness(m)) {
			return false
		}
	}
	return true
}

// randWitness returns a uniformly random witness in [2, m-2] by rejection
// sampling limbs from the CSPRNG.  The candidate width exceeds 78 bits when
// this is called, so the range is never empty.
func randWitness[L bigint.Limb](m bigint.Int[L]) bigint.Int[L] {
	w := bigint.LimbBits[L]()
	two := bigint.FromUint64[L](2)
	bound := m.SubNoCarry(bigint.FromUint64[L](4)) // witness - 2 lies in [0, bound]

	// Mask the top limb down to the significant bits of the bound to keep
	// the expected number of rejections below two.
	topBits := bound.BitLen() % w
	mask := ^L(0)
	if topBits != 0 {
		mask = L(1)<<topBits - 1
	}
	limbs := (bound.BitLen() + w - 1) / w

	for {
		a := make(bigint.Int[L], limbs)
		for i := range a {
			a[i] = L(rand.Uint64())
		}
		a[limbs-1] &= mask
		if a.Cmp(bound) <= 0 {
			return a.Add(two).Resize(len(m))
		}
	}
}
