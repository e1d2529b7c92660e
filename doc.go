// Package lvlkern bundles small, portable numeric computation kernels
// designed to run anywhere — including sandboxed WebAssembly guests
// with nothing but a call boundary and a byte stream to the host.
//
// 🚀 What is lvlkern?
//
//	A tiny, deterministic kernel library:
//		• Integer matrices: dense row-major storage + exact products
//		• Primes: trial-division primality, range counting, lazy streams
//		• Job drivers: standalone binaries speaking the stdin/stdout
//		  contract of a wasm compute host (GOOS=wasip1 GOARCH=wasm)
//
// ✨ Why choose lvlkern?
//
//   - Sandbox-friendly – no filesystem, network, or environment access
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps, fully deterministic loop orders
//   - Reentrant – every kernel is a pure function over caller-owned buffers
//
// Everything is organized under three surfaces:
//
//	intmat/  — dense integer matrices (construction, product, rendering)
//	primes/  — primality predicate, counting, lazy prime sequences
//	cmd/     — matrixjob & primejob wasm job drivers
//
// Quick taste:
//
//	a, _ := intmat.FromRows([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	b, _ := intmat.FromRows([][]int64{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}})
//	c, _ := intmat.Mul(a, b)
//	fmt.Print(c) // 30 24 18 / 84 69 54 / 138 114 90
//
//	for p := range primes.FirstN(10) {
//	    fmt.Println(p) // 2, 3, 5, 7, 11, 13, 17, 19, 23, 29
//	}
//
// See each package's doc.go and example_test.go for usage patterns.
package lvlkern
