package primes

import "iter"

// Lazy prime sequences
//
// Both sequences are single-use per range statement but restartable: each
// `for p := range seq` starts a fresh scan from 2, so the same value can be
// ranged over any number of times with identical results. Breaking out of
// the loop stops the scan immediately — no work happens past the break.

// FirstN returns a lazy ascending sequence of the first n primes.
//
// The sequence is finite: it terminates once n primes have been yielded.
// n <= 0 yields an empty sequence immediately.
//
// Complexity: O(p_n·√p_n) for a full drain, where p_n is the n-th prime.
func FirstN(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		found := 0
		for c := 2; found < n; c++ {
			if !IsPrime(c) {
				continue
			}
			if !yield(c) {
				return // consumer broke out; stop scanning
			}
			found++
		}
	}
}

// UpTo returns a lazy ascending sequence of every prime in [2, limit].
//
// limit < 2 yields an empty sequence immediately (same empty-range policy
// as Count).
//
// Complexity: O(limit·√limit) for a full drain.
func UpTo(limit int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for c := 2; c <= limit; c++ {
			if IsPrime(c) && !yield(c) {
				return // consumer broke out; stop scanning
			}
		}
	}
}
