// Package sparsemx is a small toolkit for integer sparse-matrix arithmetic
// on plain text files.
//
// 🚀 What is sparsemx?
//
//	A dictionary-of-keys sparse matrix plus everything needed to use it from
//	the shell:
//		• matrix/ Sparse storage, Add, Sub, Mul with overflow checks
//		• codec/  the "rows=/cols=/(r, c, v)" text format, Load & Save
//		• config/ optional sparsemx.yml project settings
//		• cli/    cobra commands: add, sub, mul, run --op
//
// ✨ Guarantees
//
//   - Zero values are never stored; a cancelled cell simply disappears.
//   - Malformed input is rejected at the first bad line, with its number.
//   - Operands are never mutated; every operation returns a new matrix.
//   - Results are written in ascending (row, col) order, so output is stable.
//
// Quick example:
//
//	rows=1        rows=2        rows=1
//	cols=2    ·   cols=1    =   cols=1
//	(0, 0, 2)     (0, 0, 4)     (0, 0, 23)
//	(0, 1, 3)     (1, 0, 5)
//
//	go install github.com/katalvlaran/sparsemx/cmd/sparsemx@latest
//	sparsemx mul a.txt b.txt   # → result_outputs/product_of_a_and_b.txt
package sparsemx
