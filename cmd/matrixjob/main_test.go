package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleReport is the exact output for the built-in 3×3 sample pair.
const sampleReport = "Matrix A:\n" +
	"1 2 3\n" +
	"4 5 6\n" +
	"7 8 9\n" +
	"\n" +
	"Matrix B:\n" +
	"9 8 7\n" +
	"6 5 4\n" +
	"3 2 1\n" +
	"\n" +
	"Result (A x B):\n" +
	"30 24 18\n" +
	"84 69 54\n" +
	"138 114 90\n"

// TestRunSampleFallback drives the job with empty stdin and checks the full
// report against the reference product.
func TestRunSampleFallback(t *testing.T) {
	var out, errOut strings.Builder
	status := run(strings.NewReader(""), &out, &errOut) // empty stdin selects the sample pair

	require.Equal(t, 0, status)               // clean exit
	require.Empty(t, errOut.String())         // nothing on stderr
	require.Equal(t, sampleReport, out.String()) // exact report byte for byte
}

// TestRunStdinOperands supplies both operands on stdin and checks the product.
func TestRunStdinOperands(t *testing.T) {
	in := "1 0\n0 1\n\n5 -6\n7 8\n" // identity, blank line, payload

	var out, errOut strings.Builder
	status := run(strings.NewReader(in), &out, &errOut)

	require.Equal(t, 0, status)       // clean exit
	require.Empty(t, errOut.String()) // nothing on stderr
	require.Contains(t, out.String(), "Result (A x B):\n5 -6\n7 8\n") // I x B == B
}

// TestRunMissingSecondOperand ensures one present operand is an error,
// not a fallback to the sample.
func TestRunMissingSecondOperand(t *testing.T) {
	var out, errOut strings.Builder
	status := run(strings.NewReader("1 2\n3 4\n"), &out, &errOut) // only operand A

	require.Equal(t, 1, status)                                 // failure status
	require.Contains(t, errOut.String(), "operand B missing")   // explicit reason on stderr
}

// TestRunShapeMismatch ensures incompatible operands fail with status 1 and a
// dimension-mismatch message.
func TestRunShapeMismatch(t *testing.T) {
	in := "1 2 3\n\n4 5\n" // 1x3 then 1x2: inner dimensions differ

	var out, errOut strings.Builder
	status := run(strings.NewReader(in), &out, &errOut)

	require.Equal(t, 1, status)                                // failure status
	require.Contains(t, errOut.String(), "dimension mismatch") // sentinel text surfaces
}

// TestRunMalformedOperand ensures syntax errors are reported explicitly.
func TestRunMalformedOperand(t *testing.T) {
	var out, errOut strings.Builder
	status := run(strings.NewReader("1 oops\n"), &out, &errOut) // bad token in operand A

	require.Equal(t, 1, status)                          // failure status
	require.Contains(t, errOut.String(), "operand A")    // names the failing operand
	require.Contains(t, errOut.String(), "malformed")    // sentinel text surfaces
}
