// Command matrixjob is a standalone matrix-product job for a sandboxed
// wasm compute host (GOOS=wasip1 GOARCH=wasm), also runnable natively.
//
// Contract with the host:
//   - stdin:  optional pair of matrices in the space-separated text form
//     (rows of integers, operands separated by a blank line); when stdin is
//     empty the job multiplies the built-in 3×3 sample
//   - stdout: both operands and their product, row by row
//   - stderr + exit status 1: explicit failure on malformed or shape-
//     incompatible input
//
// The process touches no filesystem, network, or environment.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlkern/intmat"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run executes the job against the given streams and returns the exit status.
// Split from main so tests can drive it without process-level machinery.
func run(in io.Reader, out, errOut io.Writer) int {
	a, b, err := readOperands(in)
	if err != nil {
		fmt.Fprintf(errOut, "matrixjob: %v\n", err)

		return 1
	}

	result, err := intmat.Mul(a, b)
	if err != nil {
		fmt.Fprintf(errOut, "matrixjob: %v\n", err)

		return 1
	}

	fmt.Fprintf(out, "Matrix A:\n%s", a)
	fmt.Fprintf(out, "\nMatrix B:\n%s", b)
	fmt.Fprintf(out, "\nResult (A x B):\n%s", result)

	return 0
}

// readOperands parses two matrices from stdin, falling back to the built-in
// sample pair when the host supplies no input at all. A present first
// operand with a missing second one is an error, not a fallback.
func readOperands(in io.Reader) (a, b *intmat.Dense, err error) {
	a, err = intmat.ParseDense(in)
	if errors.Is(err, io.EOF) {
		sa, sb := sampleOperands()

		return sa, sb, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("operand A: %w", err)
	}

	b, err = intmat.ParseDense(in)
	if errors.Is(err, io.EOF) {
		return nil, nil, errors.New("operand B missing: need two matrices separated by a blank line")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("operand B: %w", err)
	}

	return a, b, nil
}

// sampleOperands returns the reference 3×3 pair the job multiplies when the
// host sends no input.
func sampleOperands() (*intmat.Dense, *intmat.Dense) {
	a := intmat.Mat3{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	b := intmat.Mat3{
		{9, 8, 7},
		{6, 5, 4},
		{3, 2, 1},
	}

	return a.Dense(), b.Dense()
}
