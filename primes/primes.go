package primes

import (
	"errors"
	"fmt"
)

// Trial division with the 6k±1 optimization
//
// Description:
//
//	Every prime greater than 3 has the form 6k−1 or 6k+1: any other residue
//	mod 6 is divisible by 2 or 3. After dispatching the small cases, the
//	kernel therefore tests only candidate divisors 5, 7, 11, 13, 17, 19, …
//	(i and i+2, stepping i by 6), stopping once i exceeds √n.
//
// Algorithm Outline (IsPrime):
//  1. n ≤ 1 → false; n ≤ 3 → true.
//  2. n divisible by 2 or 3 → false.
//  3. For i = 5, 11, 17, … while i ≤ n/i:
//     if n mod i == 0 or n mod (i+2) == 0 → false.
//  4. Otherwise → true.
//
// The loop bound uses the division form i <= n/i instead of i*i <= n, so
// the comparison cannot overflow for any representable n.
//
// Errors:
//   - ErrInvalidRange — negative or inverted bounds passed to CountRange.
var (
	// ErrInvalidRange indicates a negative or inverted enumeration range.
	ErrInvalidRange = errors.New("primes: invalid range")
)

// IsPrime reports whether n is prime.
//
// Total over all int values: negatives, zero and one are simply not prime.
// Deterministic trial division; no randomness, no caching, no allocation.
//
// Complexity: O(√n) divisions.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true // 2 and 3
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	// Candidates 6k±1: test i and i+2, step 6. Bound i <= n/i avoids i*i overflow.
	for i := 5; i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Count returns the number of primes in the inclusive range [2, limit].
//
// Total function: limit < 2 yields an empty range and a count of 0, never
// an error. Each call recomputes from scratch; there is no memoization.
//
// Complexity: O(limit·√limit).
func Count(limit int) int {
	count := 0
	for n := 2; n <= limit; n++ {
		if IsPrime(n) {
			count++
		}
	}

	return count
}

// CountRange returns the number of primes in the inclusive range [lo, hi].
//
// Unlike Count, this is the strict surface: it rejects malformed bounds
// instead of silently treating them as empty.
//
// Errors:
//   - ErrInvalidRange when lo < 0 or hi < lo.
//
// Complexity: O((hi−lo)·√hi).
func CountRange(lo, hi int) (int, error) {
	if lo < 0 {
		return 0, fmt.Errorf("CountRange: lo=%d: %w", lo, ErrInvalidRange)
	}
	if hi < lo {
		return 0, fmt.Errorf("CountRange: lo=%d > hi=%d: %w", lo, hi, ErrInvalidRange)
	}

	// Primes start at 2; clamping keeps the scan tight without changing the result.
	if lo < 2 {
		lo = 2
	}
	count := 0
	for n := lo; n <= hi; n++ {
		if IsPrime(n) {
			count++
		}
	}

	return count, nil
}
