// SPDX-License-Identifier: MIT
// Package: codec
//
// errors.go: sentinel errors and the structured FormatError.
//
// Error policy:
//   • Sentinels are package-level; callers branch with errors.Is.
//   • Every rejected input line is reported as *FormatError, which matches
//     ErrFormat and, when known, the specific cause (ErrFloatValue,
//     matrix.ErrOutOfRange, strconv.ErrRange, ...).
//   • File-system failures match ErrIO and still expose the *fs.PathError.

package codec

import (
	"errors"
	"fmt"
)

// ErrFormat classifies every malformed-input failure.
var ErrFormat = errors.New("codec: input has wrong format")

// ErrFloatValue marks a field that contains a decimal point. Floating-point
// values are rejected, never truncated.
var ErrFloatValue = errors.New("codec: floating-point values are not supported")

// ErrDuplicateEntry marks a repeated coordinate under WithRejectDuplicates.
var ErrDuplicateEntry = errors.New("codec: duplicate entry")

// ErrIO classifies failures to open, read, write or close a file.
var ErrIO = errors.New("codec: i/o failure")

// FormatError describes the first rejected line of an input.
type FormatError struct {
	Line   int    // 1-based line number; 0 when the input ended early
	Text   string // offending line, trimmed
	Reason string // short human-readable reason
	Err    error  // optional specific cause
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %s", ErrFormat, e.Reason)
	}

	return fmt.Sprintf("%v: line %d: %s: %q", ErrFormat, e.Line, e.Reason, e.Text)
}

// Unwrap exposes ErrFormat and the specific cause to errors.Is/As.
func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}

	return []error{ErrFormat, e.Err}
}

// formatErrorf builds a *FormatError for line n.
func formatErrorf(n int, text string, cause error, reason string, args ...any) *FormatError {
	return &FormatError{Line: n, Text: text, Reason: fmt.Sprintf(reason, args...), Err: cause}
}

// ioErrorf wraps a file-system error so it matches both ErrIO and err.
func ioErrorf(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}
