// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// context via %w) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> dimension mismatch -> overflow.

var (
	// ErrInvalidDimensions indicates that requested matrix extents are negative.
	// Zero extents are legal (an empty 0×N matrix has no addressable cell).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column passed to Set lies outside
	// the declared extents. At never returns it: reads outside are zero.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// with different extents, or Mul where a.Cols() != b.Rows(). The wrapping
	// tag names which extents disagreed.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOverflow signals that an exact result does not fit into int64.
	ErrOverflow = errors.New("matrix: integer overflow")

	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownOperation is returned by ParseOperation and Apply for selectors
	// outside {Add, Sub, Mul}.
	ErrUnknownOperation = errors.New("matrix: unknown operation")
)
