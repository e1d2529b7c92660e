// Package primes_test contains unit tests for the lazy prime sequences.
package primes_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvlkern/primes"
	"github.com/stretchr/testify/require"
)

// firstTen is the canonical expected prefix of the prime sequence.
var firstTen = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

// TestFirstNTen checks the canonical first ten primes.
func TestFirstNTen(t *testing.T) {
	got := slices.Collect(primes.FirstN(10)) // drain the sequence
	require.Equal(t, firstTen, got)          // expect the canonical prefix
}

// TestFirstNEmpty ensures n <= 0 yields an empty sequence immediately.
func TestFirstNEmpty(t *testing.T) {
	require.Empty(t, slices.Collect(primes.FirstN(0)))  // zero primes requested
	require.Empty(t, slices.Collect(primes.FirstN(-5))) // negative request is empty too
}

// TestFirstNRestartable verifies the sequence value can be ranged repeatedly
// with identical results (no hidden cursor).
func TestFirstNRestartable(t *testing.T) {
	seq := primes.FirstN(5) // one sequence value

	first := slices.Collect(seq)  // first drain
	second := slices.Collect(seq) // second drain of the same value
	require.Equal(t, first, second)               // identical output both times
	require.Equal(t, []int{2, 3, 5, 7, 11}, first) // and the expected primes
}

// TestFirstNEarlyBreak ensures breaking out of the loop stops the scan.
func TestFirstNEarlyBreak(t *testing.T) {
	var got []int
	for p := range primes.FirstN(1000) { // ask for far more than we take
		got = append(got, p)
		if len(got) == 3 {
			break // consumer stops early; no further scanning may happen
		}
	}
	require.Equal(t, []int{2, 3, 5}, got) // only the consumed prefix
}

// TestUpToBounds checks inclusive bounds and the empty-range policy.
func TestUpToBounds(t *testing.T) {
	require.Equal(t, []int{2, 3, 5, 7}, slices.Collect(primes.UpTo(7)))  // 7 itself included
	require.Equal(t, []int{2, 3, 5, 7}, slices.Collect(primes.UpTo(10))) // 8..10 add nothing
	require.Empty(t, slices.Collect(primes.UpTo(1)))                     // below the first prime
	require.Empty(t, slices.Collect(primes.UpTo(-3)))                    // negative bound is empty
}

// TestUpToAgreesWithCount verifies the stream and the counter agree.
func TestUpToAgreesWithCount(t *testing.T) {
	for _, limit := range []int{1, 2, 10, 100, 1000} {
		require.Len(t, slices.Collect(primes.UpTo(limit)), primes.Count(limit))
	}
}

// TestSequencesAscending verifies strict ascending order in both streams.
func TestSequencesAscending(t *testing.T) {
	require.True(t, slices.IsSorted(slices.Collect(primes.FirstN(100)))) // ascending prefix
	require.True(t, slices.IsSorted(slices.Collect(primes.UpTo(1000)))) // ascending bounded scan
}
