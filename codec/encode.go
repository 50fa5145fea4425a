// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsemx/matrix"
)

// Output layouts. Entries use ", " separators so the output stays readable
// and parses back with Decode.
const (
	_fmtRows  = headerRows + headerSep + "%d\n"
	_fmtCols  = headerCols + headerSep + "%d\n"
	_fmtEntry = "(%d, %d, %d)\n"
)

// Encode writes m in the text format: the two headers followed by one line
// per stored cell, ascending by row, then by column.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - ErrIO when w fails.
//
// Complexity: O(nnz log nnz).
func Encode(w io.Writer, m *matrix.Sparse) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, _fmtRows, m.Rows())
	fmt.Fprintf(bw, _fmtCols, m.Cols())
	m.Each(func(e matrix.Entry) bool {
		fmt.Fprintf(bw, _fmtEntry, e.Row, e.Col, e.Value)
		return true
	})
	// bufio.Writer latches the first write error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return ioErrorf(fmt.Errorf("write: %w", err))
	}

	return nil
}

// Marshal is Encode into a fresh byte slice.
func Marshal(m *matrix.Sparse) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
