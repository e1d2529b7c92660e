// SPDX-License-Identifier: MIT

// Package intmat - textual ingestion of the space-separated matrix form.
// ParseDense is the read side of Dense.String: the job drivers use it to
// accept operands on stdin from a wasm host.

package intmat

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDense reads one matrix from r in the Dense.String text form:
// rows of whitespace-separated signed decimal integers, one row per line.
//
// The reader is consumed only up to and including the blank line that
// terminates the matrix, so several operands can be parsed sequentially
// off a single stream (the job drivers' stdin contract). Lines are read
// byte by byte; operands are tiny, so no read-ahead buffer is needed.
//
// Implementation:
//   - Stage 1: skip leading blank lines.
//   - Stage 2: accumulate rows until a blank line or EOF; row 0 fixes the width.
//   - Stage 3: build the Dense via FromRows (shape re-validated there).
//
// Returns:
//   - *Dense: the parsed matrix.
//
// Errors:
//   - io.EOF when the input contains no rows at all (lets callers detect
//     "no operand supplied" and fall back to defaults).
//   - ErrSyntax when a token is not a signed decimal integer.
//   - ErrDimensionMismatch when a row's width differs from row 0.
//   - Any underlying reader error.
//
// Complexity: O(r*c) time and space.
func ParseDense(r io.Reader) (*Dense, error) {
	var rows [][]int64
	for {
		line, rerr := readLine(r)
		if rerr != nil && rerr != io.EOF {
			return nil, fmt.Errorf("ParseDense: %w", rerr)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(rows) > 0 {
				break // blank line terminates the matrix
			}
			if rerr == io.EOF {
				return nil, io.EOF // nothing to parse; not a syntax error
			}

			continue // leading blank line, keep scanning
		}

		fields := strings.Fields(trimmed)
		row := make([]int64, len(fields))
		for j, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("ParseDense: row %d token %q: %w", len(rows), tok, ErrSyntax)
			}
			row[j] = v
		}
		rows = append(rows, row)

		if rerr == io.EOF {
			break // last line had no trailing newline
		}
	}

	return FromRows(rows)
}

// readLine reads bytes up to and including the next '\n' (which is not part
// of the returned line). At end of input it returns whatever was gathered
// together with io.EOF. One byte per Read keeps the reader position exact.
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			if buf[0] == '\n' {
				return sb.String(), nil
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			return sb.String(), err
		}
	}
}
