// Command primejob is a standalone prime-enumeration job for a sandboxed
// wasm compute host (GOOS=wasip1 GOARCH=wasm), also runnable natively.
//
// Contract with the host:
//   - stdin:  optional single integer overriding the default bound of 1000
//   - stdout: a short human-readable report (count + first ten primes)
//   - exit status: the prime count (host-facing convenience; truncated to
//     8 bits by the OS on native targets, exactly as the reference job)
//
// The process touches no filesystem, network, or environment.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlkern/primes"
)

// defaultLimit is the inclusive upper bound scanned when stdin supplies none.
const defaultLimit = 1000

// firstPrinted is how many leading primes the report lists.
const firstPrinted = 10

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

// run executes the job against the given streams and returns the exit status.
// Split from main so tests can drive it without process-level machinery.
func run(in io.Reader, out io.Writer) int {
	limit := readLimit(in)

	fmt.Fprintf(out, "Checking primes up to %d...\n", limit)

	count := primes.Count(limit)
	fmt.Fprintf(out, "Found %d prime numbers\n", count)

	fmt.Fprintf(out, "\nFirst %d primes: ", firstPrinted)
	for p := range primes.FirstN(firstPrinted) {
		fmt.Fprintf(out, "%d ", p)
	}
	fmt.Fprintln(out)

	return count
}

// readLimit extracts an optional integer bound from stdin.
// Empty or malformed input falls back to defaultLimit; a job must not fail
// because the host sent nothing.
func readLimit(in io.Reader) int {
	raw, err := io.ReadAll(in)
	if err != nil {
		return defaultLimit
	}
	tok := strings.TrimSpace(string(raw))
	if tok == "" {
		return defaultLimit
	}
	limit, err := strconv.Atoi(tok)
	if err != nil {
		return defaultLimit
	}

	return limit
}
