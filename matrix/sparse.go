// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (dictionary of keys) & safe accessors.
//
// Purpose:
//   - Store only non-zero cells in a map keyed by (row, col).
//   - Guarantee the zero-suppression invariant from a single mutation point (Set).
//   - Keep reads total: At never fails, out-of-range cells read as 0.
//   - Provide deterministic iteration (row-major) for serialization and algebra.
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Set: O(1) average; Entries/Each: O(nnz log nnz);
//     Clone: O(nnz); Equal: O(nnz).

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew = "NewSparse" // ctor tag used in error wrappers
	ctxSet = "Set"       // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtHeader = "Sparse(%d×%d, nnz=%d)\n"
	_fmtEntry  = "  (%d, %d) = %d\n"
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
// Keeps the sentinel reachable through %w for errors.Is.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a dictionary-of-keys integer matrix.
//   - r,c hold the declared extents (rows, cols), fixed at construction.
//   - data maps a Key to its value; a zero value is never stored.
type Sparse struct {
	r, c int           // declared extents (>= 0)
	data map[Key]int64 // non-zero cells only
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sparse)(nil)

// NewSparse creates an empty rows×cols matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict extent validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate an empty key map.
//
// Behavior highlights:
//   - Zero extents are legal: 0×N and N×0 matrices simply accept no Set.
//   - No storage proportional to rows*cols is ever allocated.
//
// Errors:
//   - ErrInvalidDimensions (negative extent).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}

	return &Sparse{r: rows, c: cols, data: make(map[Key]int64)}, nil
}

// newSparseSized is the internal constructor used by algebra kernels whose
// operand extents are already validated; hint pre-sizes the map.
func newSparseSized(rows, cols, hint int) *Sparse {
	return &Sparse{r: rows, c: cols, data: make(map[Key]int64, hint)}
}

// Rows returns the declared row count. Complexity: O(1).
func (m *Sparse) Rows() int { return m.r }

// Cols returns the declared column count. Complexity: O(1).
func (m *Sparse) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Sparse) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored (non-zero) cells. Complexity: O(1).
func (m *Sparse) NNZ() int { return len(m.data) }

// inBounds reports whether (row, col) lies inside the declared extents.
func (m *Sparse) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the value stored at (row, col), or 0 when the cell is absent.
// MAIN DESCRIPTION:
//   - Total read: never fails, regardless of bounds.
//
// Behavior highlights:
//   - Coordinates outside the declared extents read as 0, matching the
//     convention that a matrix is zero outside its extent.
//   - A nil receiver reads as the empty matrix.
//
// Complexity:
//   - Time O(1) average, Space O(1).
func (m *Sparse) At(row, col int) int64 {
	if m == nil {
		return 0
	}

	return m.data[Key{Row: row, Col: col}]
}

// Set stores v at (row, col), deleting the cell when v == 0.
// MAIN DESCRIPTION:
//   - The single mutation entry point; it alone enforces "no stored zero".
//
// Implementation:
//   - Stage 1: bounds-check 0 ≤ row < Rows() and 0 ≤ col < Cols().
//   - Stage 2: v == 0 → delete key (no-op when absent); otherwise insert/overwrite.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange (wrapped with method and coordinates) for invalid indices.
//
// Determinism:
//   - Last write wins for repeated coordinates.
//
// Complexity:
//   - Time O(1) average, Space O(1).
func (m *Sparse) Set(row, col int, v int64) error {
	if m == nil {
		return sparseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	if !m.inBounds(row, col) {
		return sparseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.put(Key{Row: row, Col: col}, v)

	return nil
}

// put is the unchecked write used by kernels whose keys come from validated
// operands. It still honors zero suppression.
func (m *Sparse) put(k Key, v int64) {
	if v == 0 {
		delete(m.data, k)
		return
	}
	m.data[k] = v
}

// Entries returns every stored cell in ascending (row, col) order.
// The returned slice is a fresh copy; mutating it does not affect m.
// Complexity: O(nnz log nnz).
func (m *Sparse) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Row: k.Row, Col: k.Col, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// Each calls fn for every stored cell in ascending (row, col) order and stops
// early when fn returns false.
func (m *Sparse) Each(fn func(Entry) bool) {
	for _, e := range m.Entries() {
		if !fn(e) {
			return
		}
	}
}

// Clone returns a deep copy of m. Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	if m == nil {
		return nil
	}
	out := newSparseSized(m.r, m.c, len(m.data))
	for k, v := range m.data {
		out.data[k] = v
	}

	return out
}

// Equal reports whether m and o have identical extents and identical stored
// cells. Two nil matrices are equal.
// Complexity: O(nnz).
func (m *Sparse) Equal(o *Sparse) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c || len(m.data) != len(o.data) {
		return false
	}
	for k, v := range m.data {
		if ov, ok := o.data[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: a header line followed by one
// line per stored cell in row-major order.
func (m *Sparse) String() string {
	if m == nil {
		return "Sparse(nil)"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, _fmtHeader, m.r, m.c, len(m.data))
	for _, e := range m.Entries() {
		fmt.Fprintf(&sb, _fmtEntry, e.Row, e.Col, e.Value)
	}

	return sb.String()
}
