// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for storage and algebra tests.
//   • Keep random data seeded so failures reproduce.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemx/matrix"
)

// MustSparse ALLOCATES a rows×cols *Sparse populated with entries or fails the test.
// Entries go through Set, so bounds and zero suppression apply.
func MustSparse(tb testing.TB, rows, cols int, entries ...matrix.Entry) *matrix.Sparse {
	tb.Helper()
	m, err := matrix.FromEntries(rows, cols, entries)
	if err != nil {
		tb.Fatalf("FromEntries(%d,%d): %v", rows, cols, err)
	}

	return m
}

// E is a terse Entry constructor for table literals.
func E(row, col int, v int64) matrix.Entry {
	return matrix.Entry{Row: row, Col: col, Value: v}
}

// RandomSparse RETURNS a rows×cols matrix with about density*rows*cols
// non-zero values in [-limit, limit], using a fixed seed.
func RandomSparse(tb testing.TB, rows, cols int, density float64, limit int64, seed int64) *matrix.Sparse {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustSparse(tb, rows, cols)
	n := int(density * float64(rows*cols))
	for i := 0; i < n; i++ {
		v := rng.Int63n(2*limit+1) - limit
		if err := m.Set(rng.Intn(rows), rng.Intn(cols), v); err != nil {
			tb.Fatalf("Set: %v", err)
		}
	}

	return m
}

// EntryMap flattens a matrix into a map for order-independent comparisons.
func EntryMap(m *matrix.Sparse) map[matrix.Key]int64 {
	out := make(map[matrix.Key]int64, m.NNZ())
	for _, e := range m.Entries() {
		out[e.Key()] = e.Value
	}

	return out
}
