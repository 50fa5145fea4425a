// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage and algebra.
// This file contains ONLY domain-facing types (keys, entries) and the
// Operation selector. Errors live in errors.go, arithmetic guards in
// checked.go.
package matrix

import (
	"fmt"
	"strings"
)

// Key addresses a single cell. It is the map key of Sparse storage, so it is
// kept small and comparable.
type Key struct {
	Row int // zero-based row index
	Col int // zero-based column index
}

// Entry is one stored (non-zero) cell as exposed by Entries and Each.
type Entry struct {
	Row   int   // zero-based row index
	Col   int   // zero-based column index
	Value int64 // never 0 when produced by a Sparse
}

// Key returns the coordinate part of the entry.
func (e Entry) Key() Key { return Key{Row: e.Row, Col: e.Col} }

// less orders entries ascending by row, then by column.
func (e Entry) less(o Entry) bool {
	if e.Row != o.Row {
		return e.Row < o.Row
	}

	return e.Col < o.Col
}

// Operation selects one of the binary algebra operations.
type Operation int

// Supported operations. The numeric values match the interactive menu
// numbering (1 addition, 2 subtraction, 3 multiplication).
const (
	OpAdd Operation = iota + 1
	OpSub
	OpMul
)

// Operation names used by String and ParseOperation.
const (
	nameAdd = "add"
	nameSub = "sub"
	nameMul = "mul"
)

// String implements fmt.Stringer.
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return nameAdd
	case OpSub:
		return nameSub
	case OpMul:
		return nameMul
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Valid reports whether op is one of OpAdd, OpSub, OpMul.
func (op Operation) Valid() bool { return op >= OpAdd && op <= OpMul }

// ParseOperation maps a user-facing selector onto an Operation.
// Accepted (case-insensitive, surrounding space ignored):
//   - "1", "add", "sum", "addition"
//   - "2", "sub", "subtract", "diff", "subtraction"
//   - "3", "mul", "multiply", "product", "multiplication"
//
// Anything else yields ErrUnknownOperation.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", nameAdd, "sum", "addition":
		return OpAdd, nil
	case "2", nameSub, "subtract", "diff", "subtraction":
		return OpSub, nil
	case "3", nameMul, "multiply", "product", "multiplication":
		return OpMul, nil
	}

	return 0, fmt.Errorf("ParseOperation(%q): %w", s, ErrUnknownOperation)
}
