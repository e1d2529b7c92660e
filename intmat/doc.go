// Package intmat provides dense integer matrices and an exact
// multiplication kernel over them.
//
// The intmat package provides:
//
//   - Dense, a cache-friendly row-major int64 buffer with safe accessors
//     (At/Set return errors instead of panicking).
//   - Mul, the standard triple-nested-loop product with strict fail-fast
//     shape validation and a fast path on concrete *Dense operands.
//   - Mat3 and Mul3, a fixed 3×3 value-semantics kernel for callers whose
//     dimension is a compile-time constant (the wasm job boundary).
//   - Rendering (String) and parsing (ParseDense) of the space-separated
//     text form used by the job drivers' stdin/stdout contract.
//
// Arithmetic is plain int64 with no overflow checking: products whose
// magnitudes exceed int64 wrap around. This is a documented limitation,
// appropriate for the small magnitudes the kernels target.
//
// See the examples in this package for usage patterns.
package intmat
