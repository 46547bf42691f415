package sieve_test

import (
	"testing"

	"github.com/katalvlaran/intseq/sieve"
)

// benchmarkConstruction measures sieve construction at a given limit,
// serial (workers=1) or partitioned.
func benchmarkConstruction(b *testing.B, limit int64, workers int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if workers == 1 {
			_, err = sieve.New(limit)
		} else {
			_, err = sieve.NewParallel(limit, workers)
		}
		if err != nil {
			b.Fatalf("sieve construction failed: %v", err)
		}
	}
}

// BenchmarkNew_1e6 benchmarks serial construction up to one million.
func BenchmarkNew_1e6(b *testing.B) {
	benchmarkConstruction(b, 1_000_000, 1)
}

// BenchmarkNew_1e7 benchmarks serial construction up to ten million.
func BenchmarkNew_1e7(b *testing.B) {
	benchmarkConstruction(b, 10_000_000, 1)
}

// BenchmarkNewParallel_1e7x4 benchmarks four-way partitioned marking.
func BenchmarkNewParallel_1e7x4(b *testing.B) {
	benchmarkConstruction(b, 10_000_000, 4)
}

// BenchmarkIsPrime benchmarks the O(1) query path.
func BenchmarkIsPrime(b *testing.B) {
	s, err := sieve.New(1_000_000)
	if err != nil {
		b.Fatalf("sieve construction failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.IsPrime(999_983)
	}
}
