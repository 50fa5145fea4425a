// SPDX-License-Identifier: MIT

// Package codec: functional configuration for Decode/Load.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package codec

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRejectDuplicates keeps last-write-wins for repeated coordinates.
	DefaultRejectDuplicates = false

	// DefaultMaxLineBytes bounds a single input line (1 MiB).
	DefaultMaxLineBytes = 1 << 20

	// initialLineBuffer is the starting scanner buffer; it grows up to maxLineBytes.
	initialLineBuffer = 4 << 10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxLineBytesInvalid = "codec: WithMaxLineBytes: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	rejectDuplicates bool // DefaultRejectDuplicates
	maxLineBytes     int  // DefaultMaxLineBytes
}

// WithRejectDuplicates makes a repeated (row, col) in the input a FormatError
// (cause ErrDuplicateEntry) instead of letting the later line overwrite.
func WithRejectDuplicates() Option {
	return func(o *Options) { o.rejectDuplicates = true }
}

// WithDuplicatePolicy sets duplicate handling explicitly; reject=false is the
// default last-write-wins behavior. Useful when the policy comes from config.
func WithDuplicatePolicy(reject bool) Option {
	return func(o *Options) { o.rejectDuplicates = reject }
}

// WithMaxLineBytes bounds the length of a single input line.
// Longer lines fail with a FormatError. Panics when n <= 0.
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic(panicMaxLineBytesInvalid)
	}

	return func(o *Options) { o.maxLineBytes = n }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		rejectDuplicates: DefaultRejectDuplicates,
		maxLineBytes:     DefaultMaxLineBytes,
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
