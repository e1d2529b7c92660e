// Package primes provides deterministic trial-division primality testing
// and prime enumeration over bounded integer ranges.
//
// 🚀 What is primes?
//
//	A tiny, exact prime toolkit for small magnitudes:
//	  • IsPrime — 6k±1 trial division (no sieve, no allocation)
//	  • Count / CountRange — primes in [2,limit] or [lo,hi]
//	  • FirstN / UpTo — lazy, restartable iter.Seq streams
//
// ✨ Key features:
//   - deterministic: no probabilistic testing, identical output every call
//   - total: IsPrime accepts any int; Count treats limit<2 as the empty range
//   - overflow-safe trial bound: the loop tests i <= n/i, never i*i
//   - stateless: nothing is cached across calls; every call recomputes
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlkern/primes"
//
//	primes.IsPrime(97)      // true
//	primes.Count(1000)      // 168
//	for p := range primes.FirstN(10) {
//	    fmt.Println(p)      // 2 3 5 7 11 13 17 19 23 29
//	}
//
// Performance:
//
//   - IsPrime: O(√n) divisions, testing only candidates of the form 6k±1
//     (skips all multiples of 2 and 3 — roughly one third of the naive set)
//   - Count:   O(limit·√limit)
//
// See examples in example_test.go for detailed walkthroughs.
package primes
