// SPDX-License-Identifier: MIT

// Package matrix - public facade.
//
// Thin, descriptive aliases over the kernels plus the operation dispatcher
// used by callers that pick the operation at runtime.
package matrix

import "fmt"

// Zeros returns an empty rows×cols matrix (alias of NewSparse).
func Zeros(rows, cols int) (*Sparse, error) { return NewSparse(rows, cols) }

// FromEntries builds a rows×cols matrix from entries via Set, so bounds and
// zero suppression apply. Later entries overwrite earlier ones.
func FromEntries(rows, cols int, entries []Entry) (*Sparse, error) {
	m, err := NewSparse(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Sum is an alias for Add.
func Sum(a, b *Sparse) (*Sparse, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b *Sparse) (*Sparse, error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product(a, b *Sparse) (*Sparse, error) { return Mul(a, b) }

// Apply runs the operation selected by op on (a, b).
// Dimension checks happen inside the selected kernel before any computation.
//
// Errors:
//   - ErrUnknownOperation for an invalid selector.
//   - Anything Add/Sub/Mul return.
func Apply(op Operation, a, b *Sparse) (*Sparse, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSub:
		return Sub(a, b)
	case OpMul:
		return Mul(a, b)
	}

	return nil, fmt.Errorf("Apply(%v): %w", op, ErrUnknownOperation)
}
