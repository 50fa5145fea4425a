// Package codec reads and writes the line-oriented sparse matrix text format.
//
// Format:
//
//	rows=<non-negative integer>
//	cols=<non-negative integer>
//	(<row>, <col>, <value>)
//	(<row>, <col>, <value>)
//	...
//
// Header lines are split on the first '=' and both sides are trimmed, so
// "rows = 3" and "rows=3" are equivalent. Entry lines are trimmed, blank lines
// are skipped, and each entry is a parenthesized triple of base-10 integers.
// Floating-point values, missing parentheses, a wrong field count, coordinates
// outside the declared extents and non-integer fields all fail with a
// *FormatError (errors.Is(err, ErrFormat)); no partial matrix is returned.
//
// Encode writes the same shape with entries sorted ascending by (row, col),
// so Decode(Encode(m)) reproduces m exactly.
//
// Load and Save are the file boundary: each opens the file, processes it fully
// and closes it before returning, on success and failure alike. Failures of
// the file system surface as ErrIO wrapping the underlying *fs.PathError.
package codec
