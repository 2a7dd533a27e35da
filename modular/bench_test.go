// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package modular

import (
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/colinrford/ctbignum/bigint"
)

// benchModulus is the secp256k1 field prime used throughout the benchmarks.
var benchModulus = bigint.MustDecimal[uint64](secp256k1PrimeStr)

// randBenchOperands returns random operands reduced below the benchmark
// modulus, regenerated each run so the benchmarks are not overfitted.
var randBenchOperands = func() []bigint.Int[uint64] {
	seed := time.Now().Unix()
	rng := rand.New(rand.NewSource(seed))

	vals := make([]bigint.Int[uint64], 512)
	for i := range vals {
		v := make(bigint.Int[uint64], len(benchModulus))
		for j := range v {
			v[j] = rng.Uint64()
		}
		vals[i] = v.Mod(benchModulus)
	}
	return vals
}()

// BenchmarkMulMod benchmarks division-based modular multiplication.
func BenchmarkMulMod(b *testing.B) {
	vals := randBenchOperands

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 1; j < len(vals); j++ {
			Mul(vals[j-1], vals[j], benchModulus)
		}
	}
}

// BenchmarkBarrettReduce benchmarks modular multiplication with the
// precomputed Barrett reciprocal.
func BenchmarkBarrettReduce(b *testing.B) {
	vals := randBenchOperands
	br := NewBarrett(benchModulus)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 1; j < len(vals); j++ {
			br.Reduce(vals[j-1].Mul(vals[j]))
		}
	}
}

// BenchmarkMontgomeryMul benchmarks multiplication of values already in
// Montgomery form.
func BenchmarkMontgomeryMul(b *testing.B) {
	vals := randBenchOperands
	mt := NewMontgomery(benchModulus)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 1; j < len(vals); j++ {
			mt.Mul(vals[j-1], vals[j])
		}
	}
}

// BenchmarkExp benchmarks full-width modular exponentiation with the generic
// square-and-multiply chain.
func BenchmarkExp(b *testing.B) {
	vals := randBenchOperands

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Exp(vals[i%len(vals)], vals[(i+1)%len(vals)], benchModulus)
	}
}

// BenchmarkMontgomeryExp benchmarks full-width modular exponentiation
// carried out in Montgomery form.
func BenchmarkMontgomeryExp(b *testing.B) {
	vals := randBenchOperands
	mt := NewMontgomery(benchModulus)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mt.Exp(vals[i%len(vals)], vals[(i+1)%len(vals)])
	}
}

// BenchmarkBigIntExp benchmarks the same exponentiation with stdlib big
// integers for comparison.
func BenchmarkBigIntExp(b *testing.B) {
	vals := randBenchOperands
	bigM := toBig(benchModulus)
	bigVals := make([]*big.Int, len(vals))
	for i, v := range vals {
		bigVals[i] = toBig(v)
	}

	b.ReportAllocs()
	b.ResetTimer()
	result := new(big.Int)
	for i := 0; i < b.N; i++ {
		result.Exp(bigVals[i%len(vals)], bigVals[(i+1)%len(vals)], bigM)
	}
}
