// SPDX-License-Identifier: MIT

// Package codec - line parser.
//
// Purpose:
//   - Turn the text format into a validated *matrix.Sparse in a single pass.
//   - Reject malformed input at the first bad line with a *FormatError.
//
// State machine:
//
//	stateRows ──"rows=<n>"──▶ stateCols ──"cols=<n>"──▶ stateEntries ◀─┐
//	                                                        │            │
//	                                                        └─"(r,c,v)"──┘
//
// Headers must be lines 1 and 2. In stateEntries blank lines are skipped and
// every other line must be an entry. EOF before stateEntries is an error.
package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsemx/matrix"
)

// Literals of the text format.
const (
	headerRows  = "rows"
	headerCols  = "cols"
	headerSep   = "="
	entryOpen   = '('
	entryClose  = ')'
	fieldSep    = ","
	decimalMark = "."
	entryFields = 3
)

// decodeState is the parser position within the format.
type decodeState int

const (
	stateRows decodeState = iota
	stateCols
	stateEntries
)

// decoder carries the per-input parsing state.
type decoder struct {
	opts  Options
	state decodeState
	line  int // 1-based number of the line being processed
	rows  int
	m     *matrix.Sparse
	seen  map[matrix.Key]struct{} // only with rejectDuplicates
}

// Decode parses the text format from r.
// MAIN DESCRIPTION:
//   - Reads r line by line, validates headers and entries, and populates a
//     new Sparse through Set (so zero values store nothing and a repeated
//     coordinate is last-write-wins unless WithRejectDuplicates is given).
//
// Implementation:
//   - Stage 1: scan lines with a bounded buffer (WithMaxLineBytes).
//   - Stage 2: feed each line to the state machine; stop at the first error.
//   - Stage 3: require both headers to have been seen.
//
// Errors:
//   - *FormatError (ErrFormat) for any malformed line or a truncated header.
//   - ErrIO for read failures of r.
//
// Complexity:
//   - Time O(L + nnz), Space O(nnz) where L is the input length.
func Decode(r io.Reader, opts ...Option) (*matrix.Sparse, error) {
	d := &decoder{opts: gatherOptions(opts...)}
	if d.opts.rejectDuplicates {
		d.seen = make(map[matrix.Key]struct{})
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(initialLineBuffer, d.opts.maxLineBytes)), d.opts.maxLineBytes)
	for sc.Scan() {
		d.line++
		if err := d.feed(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, formatErrorf(d.line+1, "", err, "line exceeds %d bytes", d.opts.maxLineBytes)
		}
		return nil, ioErrorf(fmt.Errorf("read: %w", err))
	}

	switch d.state {
	case stateRows:
		return nil, formatErrorf(0, "", nil, "missing %q header", headerRows)
	case stateCols:
		return nil, formatErrorf(0, "", nil, "missing %q header", headerCols)
	}

	return d.m, nil
}

// feed advances the state machine by one raw line.
func (d *decoder) feed(raw string) error {
	text := strings.TrimSpace(raw)
	switch d.state {
	case stateRows:
		n, err := d.parseHeader(text, headerRows)
		if err != nil {
			return err
		}
		d.rows = n
		d.state = stateCols
	case stateCols:
		n, err := d.parseHeader(text, headerCols)
		if err != nil {
			return err
		}
		m, err := matrix.NewSparse(d.rows, n)
		if err != nil {
			return formatErrorf(d.line, text, err, "invalid dimensions")
		}
		d.m = m
		d.state = stateEntries
	default:
		if text == "" {
			return nil
		}
		return d.parseEntry(text)
	}

	return nil
}

// parseHeader parses "<want>=<n>" with n a non-negative integer.
// The line is split on the first '=' and both halves are trimmed.
func (d *decoder) parseHeader(text, want string) (int, error) {
	key, val, found := strings.Cut(text, headerSep)
	if !found || strings.TrimSpace(key) != want {
		return 0, formatErrorf(d.line, text, nil, "expected %q header", want+headerSep+"<n>")
	}
	val = strings.TrimSpace(val)
	if strings.Contains(val, decimalMark) {
		return 0, formatErrorf(d.line, text, ErrFloatValue, "%s must be an integer", want)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, formatErrorf(d.line, text, err, "%s must be an integer", want)
	}
	if n < 0 {
		return 0, formatErrorf(d.line, text, matrix.ErrInvalidDimensions, "%s must be non-negative", want)
	}

	return n, nil
}

// parseEntry parses "(row, col, value)" and stores it in d.m.
func (d *decoder) parseEntry(text string) error {
	if len(text) < 2 || text[0] != entryOpen || text[len(text)-1] != entryClose {
		return formatErrorf(d.line, text, nil, "entry must be enclosed in parentheses")
	}
	fields := strings.Split(text[1:len(text)-1], fieldSep)
	if len(fields) != entryFields {
		return formatErrorf(d.line, text, nil, "entry must have %d comma-separated fields, got %d", entryFields, len(fields))
	}

	var nums [entryFields]int64
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if strings.Contains(f, decimalMark) {
			return formatErrorf(d.line, text, ErrFloatValue, "field %d is not an integer", i+1)
		}
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return formatErrorf(d.line, text, err, "field %d is not an integer", i+1)
		}
		nums[i] = n
	}

	row, col, val := nums[0], nums[1], nums[2]
	rows, cols := d.m.Shape()
	if row < 0 || row >= int64(rows) || col < 0 || col >= int64(cols) {
		return formatErrorf(d.line, text, matrix.ErrOutOfRange,
			"coordinate (%d, %d) outside %dx%d", row, col, rows, cols)
	}

	if d.seen != nil {
		k := matrix.Key{Row: int(row), Col: int(col)}
		if _, dup := d.seen[k]; dup {
			return formatErrorf(d.line, text, ErrDuplicateEntry, "coordinate (%d, %d) repeated", row, col)
		}
		d.seen[k] = struct{}{}
	}

	if err := d.m.Set(int(row), int(col), val); err != nil {
		return formatErrorf(d.line, text, err, "entry rejected")
	}

	return nil
}

// Unmarshal is Decode over an in-memory buffer.
func Unmarshal(data []byte, opts ...Option) (*matrix.Sparse, error) {
	return Decode(bytes.NewReader(data), opts...)
}
