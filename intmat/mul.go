// SPDX-License-Identifier: MIT
// Package intmat - the multiplication kernels.
//
// Purpose:
//   - Declare the canonical dense product used across the module.
//   - Keep strict fail-fast validation and deterministic loop orders.
//
// Notes:
//   - All kernels use the central validators and return plain sentinels or
//     sentinels wrapped via kernelErrorf at the facade.

package intmat

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul = "Mul"
)

// kernelErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: allocate a fresh zeroed result (r × c).
//   - Stage 3: if A and B are *Dense, use i→k→j with row-major strides and
//     skip zero A[i,k]; otherwise use i→j→k with a fixed order.
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//   - Operands are never mutated; the result is fully caller-owned.
//   - Accumulation is plain int64: products beyond int64 wrap (documented
//     limitation; see package doc).
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new result C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c) for the result.
//
// AI-Hints:
//   - Pass concrete *Dense operands to hit the flat fast path.
//   - For the fixed 3×3 boundary shape, prefer Mul3 (no error path at all).
func Mul(a, b Matrix) (*Dense, error) {
	// Validate operands before touching any data.
	if err := ValidateMulShape(a, b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	// Fast path: *Dense × *Dense → flat row-major walks, i→k→j order.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var i, k, j int
			var aik int64
			for i = 0; i < rows; i++ {
				for k = 0; k < inner; k++ {
					aik = da.data[i*inner+k]
					if aik == 0 {
						continue // zero row element contributes nothing
					}
					for j = 0; j < cols; j++ {
						res.data[i*cols+j] += aik * db.data[k*cols+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j→k order and a scalar accumulator.
	var i, j, k int
	var av, bv, sum int64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0 // accumulator starts at zero for every output cell
			for k = 0; k < inner; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, kernelErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, kernelErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += av * bv
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Mul3 multiplies two fixed 3×3 matrices and returns the product by value.
//
// The dimension is a compile-time invariant of the type, so there is no
// shape check and no error path — the fixed-N twin of Mul. Loop order is
// the same deterministic i→j→k with a zero-initialized accumulator.
//
// Complexity: O(27) — constant.
func Mul3(a, b Mat3) Mat3 {
	var res Mat3 // zero value is the zero matrix
	var i, j, k int
	var sum int64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			sum = 0
			for k = 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			res[i][j] = sum
		}
	}

	return res
}

// String renders the fixed matrix in the same text form as Dense.String.
func (m Mat3) String() string {
	d, _ := FromRows([][]int64{m[0][:], m[1][:], m[2][:]}) // shape is valid by construction

	return d.String()
}

// Dense converts the fixed matrix into its variable-dimension twin.
// Complexity: O(9).
func (m Mat3) Dense() *Dense {
	d, _ := FromRows([][]int64{m[0][:], m[1][:], m[2][:]}) // shape is valid by construction

	return d
}
