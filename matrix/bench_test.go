// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fractions.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/exact/bignum"
	"github.com/katalvlaran/exact/matrix"
)

// benchSizes are the matrix sizes to benchmark. Exact arithmetic is far
// slower than float64, so sizes stay small.
var benchSizes = []int{8, 16, 32}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkN bignum.Number
)

func BenchmarkAdd(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandFilledDense(b, n, n, 1337)
			y := RandFilledDense(b, n, n, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandFilledDense(b, n, n, 1)
			y := RandFilledDense(b, n, n, 2)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandFilledDense(b, n, n, 3)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.T(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	for _, n := range []int{4, 8, 12} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandFilledDense(b, n, n, 5)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkN = d
			}
		})
	}
}
