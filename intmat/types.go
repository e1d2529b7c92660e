// SPDX-License-Identifier: MIT

// Package intmat: domain types shared by the dense container and kernels.
// This file intentionally contains ONLY domain-facing types; errors live in
// errors.go and heavy kernels in mul.go per the package conventions.
package intmat

// Matrix represents a two-dimensional mutable array of int64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (int64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v int64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Mat3 is a fixed-dimension 3×3 integer matrix with value semantics.
//
// It is the compile-time-dimension twin of Dense: both operands and the
// result share the dimension by construction, so Mul3 needs no shape check
// and no error path. Mat3 is the natural carrier for the wasm call boundary,
// where the host stages nine integers per operand.
type Mat3 [3][3]int64
