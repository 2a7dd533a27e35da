// Copyright (c) 2025 The ctbignum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
	"time"
)

// randBenchVal houses values used throughout the benchmarks that are randomly
// generated with each run to ensure they are not overfitted.
type randBenchVal struct {
	n1    Int[uint64]
	n2    Int[uint64]
	bigN1 *big.Int
	bigN2 *big.Int
}

// randBenchVals houses a slice of the aforementioned randomly-generated
// values to be used throughout the benchmarks to ensure they are not
// overfitted.
var randBenchVals = func() []randBenchVal {
	// Use a unique random seed each benchmark instance.
	seed := time.Now().Unix()
	rng := rand.New(rand.NewSource(seed))

	vals := make([]randBenchVal, 512)
	for i := 0; i < len(vals); i++ {
		val := &vals[i]
		val.n1 = make(Int[uint64], 4)
		val.n2 = make(Int[uint64], 4)
		for j := 0; j < 4; j++ {
			val.n1[j] = rng.Uint64()
			val.n2[j] = rng.Uint64()
		}
		if val.n2.IsZero() {
			val.n2[0] = 1
		}
		val.bigN1 = toBig(val.n1)
		val.bigN2 = toBig(val.n2)
	}
	return vals
}()

// BenchmarkMul benchmarks the full 512-bit product of 256-bit operands with
// the fixed-precision type.
func BenchmarkMul(b *testing.B) {
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			vals[j].n1.Mul(vals[j].n2)
		}
	}
}

// BenchmarkBigIntMul benchmarks the full 512-bit product of 256-bit operands
// with stdlib big integers.
func BenchmarkBigIntMul(b *testing.B) {
	result := new(big.Int)
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			result.Mul(vals[j].bigN1, vals[j].bigN2)
		}
	}
}

// BenchmarkDiv benchmarks division of a 512-bit dividend by a 256-bit
// divisor with the fixed-precision type.
func BenchmarkDiv(b *testing.B) {
	vals := randBenchVals

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i += len(vals) {
		for j := 0; j < len(vals); j++ {
			wide := vals[j].n1.Mul(vals[j].n1)
			wide.Div(vals[j].n2)
		}
	}
}

// BenchmarkString benchmarks the decimal rendering for several widths.
func BenchmarkString(b *testing.B) {
	for _, limbs := range []int{2, 4, 8} {
		benchName := fmt.Sprintf("%d-limbs", limbs)
		b.Run(benchName, func(b *testing.B) {
			n := make(Int[uint64], limbs)
			for i := range n {
				n[i] = ^uint64(0)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = n.String()
			}
		})
	}
}
