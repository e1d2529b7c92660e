package primes_test

import (
	"testing"

	"github.com/katalvlaran/lvlkern/primes"
)

// benchmarkCount is a helper that counts primes up to limit b.N times.
func benchmarkCount(b *testing.B, limit int) {
	b.ResetTimer() // nothing to set up, but keep the shape uniform
	for i := 0; i < b.N; i++ {
		_ = primes.Count(limit)
	}
}

// BenchmarkIsPrime_Small benchmarks the predicate on a small prime.
func BenchmarkIsPrime_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = primes.IsPrime(97)
	}
}

// BenchmarkIsPrime_Large benchmarks the predicate on a large prime
// (10000th prime; worst case — the trial loop runs to the root).
func BenchmarkIsPrime_Large(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = primes.IsPrime(104729)
	}
}

// BenchmarkCount_1e3 benchmarks the reference bound of 1000.
func BenchmarkCount_1e3(b *testing.B) {
	benchmarkCount(b, 1000)
}

// BenchmarkCount_1e5 benchmarks a heavier bound.
func BenchmarkCount_1e5(b *testing.B) {
	benchmarkCount(b, 100000)
}

// BenchmarkFirstN_100 benchmarks draining a lazy prefix of 100 primes.
func BenchmarkFirstN_100(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range primes.FirstN(100) {
		}
	}
}
