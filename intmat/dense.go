// SPDX-License-Identifier: MIT

// Package intmat - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Render the space-separated text form consumed/produced by the job drivers.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot kernels (see mul.go): operate on the flat data slice directly.
//   - Use FromRows for literals in tests; NewDense for zeroed accumulators.
//
// Complexity quicksheet:
//   - NewDense/Identity: O(r*c) zero-init; At/Set: O(1); Clone/Equal/String: O(r*c).

package intmat

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
// Keeps a stable "Dense.<method>(row,col): <sentinel>" shape for diagnostics
// while preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols), both strictly positive.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (>0, validated at construction)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements the public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled flat buffer of length rows*cols.
//
// Inputs:
//   - rows, cols: requested shape, both strictly positive.
//
// Returns:
//   - *Dense: freshly allocated zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c) for zero-init, Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Reject non-positive shapes before allocating anything.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]int64, rows*cols),
	}, nil
}

// FromRows builds a Dense from a slice of rows, copying every element.
// The input is never retained; mutating rows afterwards does not affect
// the returned matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when any row has a different length (ragged input).
//
// Complexity: O(r*c).
func FromRows(rows [][]int64) (*Dense, error) {
	// An empty outer or first inner slice cannot define a shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]int64, r*c)}

	var i int // deterministic row order
	for i = 0; i < r; i++ {
		// Every row must match the width established by row 0.
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
//
// Errors:
//   - ErrInvalidDimensions when n<=0.
//
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1 // diagonal walk, off-diagonal stays zero
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// inBounds reports whether (i,j) addresses a valid cell.
func (d *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < d.r && j >= 0 && j < d.c
}

// At retrieves the element at (i, j).
//
// Errors:
//   - ErrOutOfRange (wrapped with method context) on invalid indices.
//
// Complexity: O(1).
func (d *Dense) At(i, j int) (int64, error) {
	if !d.inBounds(i, j) {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set assigns v at (i, j).
//
// Errors:
//   - ErrOutOfRange (wrapped with method context) on invalid indices.
//
// Complexity: O(1).
func (d *Dense) Set(i, j int, v int64) error {
	if !d.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Row returns a copy of row i. The returned slice is caller-owned;
// mutating it does not affect the matrix.
//
// Errors:
//   - ErrOutOfRange on invalid row index.
//
// Complexity: O(c).
func (d *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= d.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int64, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}

// Clone returns a deep copy of the matrix with an independent buffer.
// Complexity: O(r*c).
func (d *Dense) Clone() Matrix {
	cp := &Dense{r: d.r, c: d.c, data: make([]int64, len(d.data))}
	copy(cp.data, d.data)

	return cp
}

// Equal reports whether other has the same shape and elements.
// A nil other never equals a non-nil receiver.
//
// Complexity: O(r*c) via the flat fast path on *Dense, or the interface
// fallback with fixed i→j order otherwise.
func (d *Dense) Equal(other Matrix) bool {
	if other == nil {
		return false
	}
	if d.r != other.Rows() || d.c != other.Cols() {
		return false
	}

	// Fast path: compare backing slices directly.
	if od, ok := other.(*Dense); ok {
		for idx := range d.data { // deterministic 0..n-1
			if d.data[idx] != od.data[idx] {
				return false
			}
		}

		return true
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			v, err := other.At(i, j)
			if err != nil || v != d.data[i*d.c+j] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix as rows of space-separated integers, one line
// per row, each line newline-terminated. This is the exact text form the
// job drivers print and ParseDense reads back.
//
// Complexity: O(r*c).
func (d *Dense) String() string {
	var sb strings.Builder
	var i, j int // deterministic i→j order
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatInt(d.data[i*d.c+j], 10))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
