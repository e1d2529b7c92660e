package primes_test

import (
	"fmt"

	"github.com/katalvlaran/lvlkern/primes"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCount
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Count every prime in [2, 1000] — the reference job's report line.
//
// Complexity: O(limit·√limit)
func ExampleCount() {
	fmt.Println(primes.Count(1000))
	// Output:
	// 168
}

// ExampleFirstN streams the first ten primes lazily: nothing beyond the
// tenth prime is ever tested.
func ExampleFirstN() {
	for p := range primes.FirstN(10) {
		fmt.Printf("%d ", p)
	}
	fmt.Println()
	// Output:
	// 2 3 5 7 11 13 17 19 23 29
}

// ExampleIsPrime shows the predicate on both sides of the boundary policy.
func ExampleIsPrime() {
	fmt.Println(primes.IsPrime(1))
	fmt.Println(primes.IsPrime(2))
	fmt.Println(primes.IsPrime(97))
	fmt.Println(primes.IsPrime(100))
	// Output:
	// false
	// true
	// true
	// false
}

// ExampleUpTo enumerates the primes below a small bound.
func ExampleUpTo() {
	for p := range primes.UpTo(30) {
		fmt.Printf("%d ", p)
	}
	fmt.Println()
	// Output:
	// 2 3 5 7 11 13 17 19 23 29
}
