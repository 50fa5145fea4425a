// Package matrix_test provides benchmarks for the sparse algebra kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sparsemx/matrix"
)

// benchSizes are the square extents to benchmark at 1% density.
var benchSizes = []int{256, 1024, 4096}

// sink to defeat dead-code elimination
var sinkM *matrix.Sparse

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomSparse(b, n, n, 0.01, 1000, 1337)
			B := RandomSparse(b, n, n, 0.01, 1000, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomSparse(b, n, n, 0.01, 1000, 11)
			B := RandomSparse(b, n, n, 0.01, 1000, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
