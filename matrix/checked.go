// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide overflow-checked int64 kernels used by every algebra operation.
//   - Keep the "fail, never wrap" numeric policy in one place.
//
// Determinism & Performance:
//   - Pure, branch-only checks; no allocations, no big.Int fallbacks.

package matrix

import "math"

// addInt64 returns a+b or ok=false when the exact sum does not fit into int64.
// Complexity: O(1).
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	// Overflow iff both operands share a sign and the sum's sign differs.
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, false
	}

	return s, true
}

// subInt64 returns a-b or ok=false when the exact difference does not fit.
// Complexity: O(1).
func subInt64(a, b int64) (int64, bool) {
	d := a - b
	// Overflow iff operands have different signs and the result's sign differs from a.
	if (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0) {
		return 0, false
	}

	return d, true
}

// mulInt64 returns a*b or ok=false when the exact product does not fit.
// Complexity: O(1).
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MinInt64 * -1 is the one case the division check below cannot see.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}
