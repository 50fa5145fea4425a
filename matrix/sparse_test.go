// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Sparse storage and accessors.
package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/sparsemx/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewSparse_InvalidDimensions ensures negative extents are rejected.
func TestNewSparse_InvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewSparse(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSparse(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewSparse_ZeroExtents verifies 0×N matrices exist but accept no writes.
func TestNewSparse_ZeroExtents(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSparse(0, 3)
	require.NoError(t, err)
	rows, cols := m.Shape()
	require.Equal(t, 0, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, 0, m.NNZ())
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrOutOfRange)
}

// TestSetAt_RoundTrip validates Set followed by At, including overwrite.
func TestSetAt_RoundTrip(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 3, 4)
	require.NoError(t, m.Set(1, 2, 7))
	require.Equal(t, int64(7), m.At(1, 2))
	require.Equal(t, int64(0), m.At(2, 1)) // never set

	require.NoError(t, m.Set(1, 2, -9)) // last write wins
	require.Equal(t, int64(-9), m.At(1, 2))
	require.Equal(t, 1, m.NNZ())
}

// TestSet_ZeroDeletes checks that writing zero removes the key.
func TestSet_ZeroDeletes(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 2, 2, E(0, 0, 5), E(1, 1, 6))
	require.NoError(t, m.Set(0, 0, 0))
	require.Equal(t, 1, m.NNZ())
	require.Equal(t, int64(0), m.At(0, 0))
	require.Equal(t, []matrix.Entry{E(1, 1, 6)}, m.Entries())
}

// TestSet_ZeroOnAbsentIsNoop checks idempotence of zero suppression.
func TestSet_ZeroOnAbsentIsNoop(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 2, 2, E(1, 0, 3))
	before := EntryMap(m)
	require.NoError(t, m.Set(0, 1, 0))
	require.NoError(t, m.Set(0, 1, 0))
	require.Equal(t, before, EntryMap(m))
}

// TestSet_OutOfRange ensures writes outside the extents fail with ErrOutOfRange.
func TestSet_OutOfRange(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 2, 3)
	cases := []struct{ row, col int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5},
	}
	for _, tc := range cases {
		err := m.Set(tc.row, tc.col, 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", tc.row, tc.col)
	}
	require.Equal(t, 0, m.NNZ())

	// Zero writes are bounds-checked too.
	require.ErrorIs(t, m.Set(9, 9, 0), matrix.ErrOutOfRange)
}

// TestAt_OutOfRangeReadsZero ensures reads never fail.
func TestAt_OutOfRangeReadsZero(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 2, 2, E(1, 1, 4))
	require.Equal(t, int64(0), m.At(-1, 0))
	require.Equal(t, int64(0), m.At(2, 2))
	require.Equal(t, int64(0), m.At(100, -100))
}

// TestNilReceiver covers the nil-safe paths.
func TestNilReceiver(t *testing.T) {
	t.Parallel()

	var m *matrix.Sparse
	require.Equal(t, int64(0), m.At(0, 0))
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
	require.Nil(t, m.Entries())
	require.Nil(t, m.Clone())
	require.True(t, m.Equal(nil))
	require.Equal(t, "Sparse(nil)", m.String())
}

// TestEntries_RowMajorOrder verifies deterministic ascending (row, col) order.
func TestEntries_RowMajorOrder(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 3, 3, E(2, 0, 1), E(0, 2, 2), E(1, 1, 3), E(0, 0, 4), E(2, 2, 5))
	want := []matrix.Entry{E(0, 0, 4), E(0, 2, 2), E(1, 1, 3), E(2, 0, 1), E(2, 2, 5)}
	require.Equal(t, want, m.Entries())

	var seen []matrix.Entry
	m.Each(func(e matrix.Entry) bool {
		seen = append(seen, e)
		return len(seen) < 2 // stop early after two
	})
	require.Equal(t, want[:2], seen)
}

// TestClone_Independent ensures the clone does not alias the original.
func TestClone_Independent(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 2, 2, E(0, 1, 9))
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(0, 1, 1))
	require.Equal(t, int64(9), m.At(0, 1))
	require.False(t, m.Equal(c))
}

// TestEqual_ComparesExtents ensures same entries with different extents differ.
func TestEqual_ComparesExtents(t *testing.T) {
	t.Parallel()

	a := MustSparse(t, 2, 2, E(0, 0, 1))
	b := MustSparse(t, 3, 2, E(0, 0, 1))
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
}

// TestString_ListsEntries checks the debug rendering.
func TestString_ListsEntries(t *testing.T) {
	t.Parallel()

	m := MustSparse(t, 2, 3, E(1, 2, -4), E(0, 0, 1))
	s := m.String()
	require.True(t, strings.HasPrefix(s, "Sparse(2×3, nnz=2)\n"))
	require.Less(t, strings.Index(s, "(0, 0) = 1"), strings.Index(s, "(1, 2) = -4"))
}

// TestFromEntries_PropagatesBounds ensures helper construction validates too.
func TestFromEntries_PropagatesBounds(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromEntries(1, 1, []matrix.Entry{E(0, 0, 1), E(1, 0, 2)})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.FromEntries(-2, 1, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
