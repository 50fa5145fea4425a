// Package matrix offers a dictionary-of-keys sparse integer matrix and the
// algebra defined over it.
//
// The matrix package provides:
//
//   - Sparse: a (row, col) → int64 mapping that stores non-zero values only,
//     together with its declared row/column extents.
//   - Add, Sub and Mul: pure operations over two Sparse operands that always
//     return a freshly allocated result and never mutate their inputs.
//   - Operation / Apply: a small selector so callers (CLI, batch jobs) can
//     dispatch one of the three operations by name or menu number.
//
// Storage never holds a zero: Set(i, j, 0) deletes the key. Reads outside the
// declared extent return 0 (a matrix is implicitly zero-padded), while writes
// outside the extent fail with ErrOutOfRange.
//
// Values are int64. Every addition, subtraction and multiplication is checked,
// and an operation whose exact result does not fit fails with ErrOverflow
// instead of silently wrapping.
//
// See the examples in this package and the codec package for the text format.
package matrix
