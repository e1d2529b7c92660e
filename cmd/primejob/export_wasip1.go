//go:build wasip1

// Reactor-mode entry points: a wasm host that instantiates this module
// without running _start can call the kernels directly through the
// primitive-typed boundary below (integer in, integer out — no linear
// memory layout to agree on).

package main

import "github.com/katalvlaran/lvlkern/primes"

//go:wasmexport is_prime
func wasmIsPrime(n int32) int32 {
	if primes.IsPrime(int(n)) {
		return 1
	}

	return 0
}

//go:wasmexport count_primes
func wasmCountPrimes(limit int32) int32 {
	return int32(primes.Count(int(limit)))
}
