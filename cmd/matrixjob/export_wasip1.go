//go:build wasip1

// Reactor-mode entry points for the fixed 3×3 product: the host stages the
// operands cell by cell, triggers the multiply, then reads the result back.
// Only primitive integers cross the boundary, so host and guest never have
// to agree on a linear-memory layout.
//
// The staging buffers below are shim state, not kernel state: the kernels
// themselves stay pure, and a host that wants isolation between calls
// simply restages all eighteen cells.

package main

import "github.com/katalvlaran/lvlkern/intmat"

var (
	stageA intmat.Mat3 // left operand, written by mat3_set_a
	stageB intmat.Mat3 // right operand, written by mat3_set_b
	stageC intmat.Mat3 // product, populated by mat3_multiply
)

// inBounds3 guards the staged-cell indices coming from the host.
func inBounds3(i, j int32) bool {
	return i >= 0 && i < 3 && j >= 0 && j < 3
}

//go:wasmexport mat3_set_a
func wasmSetA(i, j int32, v int64) int32 {
	if !inBounds3(i, j) {
		return 1
	}
	stageA[i][j] = v

	return 0
}

//go:wasmexport mat3_set_b
func wasmSetB(i, j int32, v int64) int32 {
	if !inBounds3(i, j) {
		return 1
	}
	stageB[i][j] = v

	return 0
}

//go:wasmexport mat3_multiply
func wasmMultiply() {
	stageC = intmat.Mul3(stageA, stageB)
}

//go:wasmexport mat3_get
func wasmGet(i, j int32) int64 {
	if !inBounds3(i, j) {
		return 0
	}

	return stageC[i][j]
}
