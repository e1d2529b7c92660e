// SPDX-License-Identifier: MIT
// Package intmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the intmat
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package intmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "intmat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index -> dimension mismatch -> parse syntax.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("intmat: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("intmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Mul where a.Cols != b.Rows, or ragged rows passed to FromRows.
	ErrDimensionMismatch = errors.New("intmat: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("intmat: nil matrix")

	// ErrSyntax indicates malformed textual input handed to ParseDense
	// (a token that is not a signed decimal integer).
	ErrSyntax = errors.New("intmat: malformed matrix text")
)
