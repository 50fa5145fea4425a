// SPDX-License-Identifier: MIT
// Package matrix provides the sparse algebra kernels: element-wise addition,
// subtraction and matrix multiplication. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Kernels never mutate operands; every call allocates a fresh result.
//   - Zero results are suppressed by the storage layer (put/Set), never here.
//   - Every arithmetic step is overflow-checked (see checked.go).

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// overflowErrorf reports which cell overflowed for operation tag.
func overflowErrorf(tag string, k Key) error {
	return matrixErrorf(tag, fmt.Errorf("cell (%d,%d): %w", k.Row, k.Col, ErrOverflow))
}

// addSub computes out = a + sign*b over the union of occupied cells.
// MAIN DESCRIPTION:
//   - Shared kernel for Add (sign=+1) and Sub (sign=-1).
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b) before any allocation.
//   - Stage 2: copy a's cells into the result.
//   - Stage 3: for each of b's cells combine with the current result value;
//     put() drops cells that cancel to zero.
//
// Behavior highlights:
//   - Cells present in neither operand are never touched.
//   - Inputs remain immutable; result is freshly allocated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
//   - ErrOverflow when a combined cell does not fit into int64.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func addSub(a, b *Sparse, sign int, opTag string) (*Sparse, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newSparseSized(a.r, a.c, len(a.data)+len(b.data))
	for k, v := range a.data {
		res.data[k] = v // a never stores zero, so no suppression needed
	}

	var (
		sum int64
		ok  bool
	)
	for k, bv := range b.data {
		if sign > 0 {
			sum, ok = addInt64(res.data[k], bv)
		} else {
			sum, ok = subInt64(res.data[k], bv)
		}
		if !ok {
			return nil, overflowErrorf(opTag, k)
		}
		res.put(k, sum)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
//
// Inputs:
//   - a, b: operands with identical extents.
//
// Returns:
//   - *Sparse with C[i,j] = A[i,j] + B[i,j]; cancelling cells are absent.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOverflow.
//
// Complexity:
//   - Time O(nnz(a)+nnz(b)), Space O(nnz(a)+nnz(b)).
func Add(a, b *Sparse) (*Sparse, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOverflow.
//
// Complexity:
//   - Time O(nnz(a)+nnz(b)), Space O(nnz(a)+nnz(b)).
func Sub(a, b *Sparse) (*Sparse, error) { return addSub(a, b, -1, opSub) }

// rowTerm is one non-zero of B within a single row: (col, value).
type rowTerm struct {
	col int
	val int64
}

// indexRows groups m's cells by row, each row's terms ordered by column.
// Complexity: O(nnz log nnz) (Entries sorts once).
func indexRows(m *Sparse) map[int][]rowTerm {
	idx := make(map[int][]rowTerm)
	for _, e := range m.Entries() {
		idx[e.Row] = append(idx[e.Row], rowTerm{col: e.Col, val: e.Value})
	}

	return idx
}

// Mul performs sparse matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - Row-indexed sparse product: only pairs (A[i,k], B[k,j]) with both
//     factors non-zero are ever multiplied.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows) before any work.
//   - Stage 2: index B by row: k → [(j, B[k,j])].
//   - Stage 3: walk A's cells in (row, col) order; for A[i,k] accumulate
//     A[i,k]*B[k,j] into acc[(i,j)] for every term of B's row k.
//   - Stage 4: write every non-zero accumulator into the result.
//
// Behavior highlights:
//   - Result extents are A.Rows() × B.Cols().
//   - Sums that cancel to zero are not stored.
//   - A's cells are visited in a fixed order, so overflow detection in
//     partial sums is reproducible.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOverflow.
//
// Complexity:
//   - Time O(nnz(A) log nnz(A) + nnz(B) log nnz(B) + F) where F is the number
//     of matching (A[i,k], B[k,·]) pairs; Space O(nnz(B) + nnz(C)).
func Mul(a, b *Sparse) (*Sparse, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	bRows := indexRows(b)
	acc := make(map[Key]int64)

	var (
		prod, sum int64
		ok        bool
		k         Key
	)
	for _, ae := range a.Entries() {
		terms, found := bRows[ae.Col]
		if !found {
			continue // B's row k is empty: A[i,k] contributes nothing
		}
		for _, t := range terms {
			k = Key{Row: ae.Row, Col: t.col}
			if prod, ok = mulInt64(ae.Value, t.val); !ok {
				return nil, overflowErrorf(opMul, k)
			}
			if sum, ok = addInt64(acc[k], prod); !ok {
				return nil, overflowErrorf(opMul, k)
			}
			acc[k] = sum
		}
	}

	res := newSparseSized(a.r, b.c, len(acc))
	for key, v := range acc {
		res.put(key, v)
	}

	return res, nil
}
