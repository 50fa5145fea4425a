package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsemx/codec"
	"github.com/katalvlaran/sparsemx/config"
	"github.com/katalvlaran/sparsemx/matrix"
)

// Exit codes for CLI commands.
const (
	ExitSuccess    = 0 // Operation completed and the result was written
	ExitFailure    = 1 // Operands loaded but the operation failed (dimensions, overflow)
	ExitInputError = 2 // Bad input: usage, unreadable/malformed files, unknown operation
)

// Error codes reported in diagnostics.
const (
	CodeFormat    = "E_FORMAT"
	CodeIO        = "E_IO"
	CodeDimension = "E_DIMENSION"
	CodeOverflow  = "E_OVERFLOW"
	CodeOperation = "E_OPERATION"
	CodeConfig    = "E_CONFIG"
	CodeUsage     = "E_USAGE"
)

// ExitError represents an error with a specific exit code and diagnostic code.
type ExitError struct {
	Code    int    // process exit code
	Kind    string // diagnostic code (E_FORMAT, ...)
	Message string // short context
	Err     error  // underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError classifies err by the core sentinels it matches and attaches
// message as context.
func WrapExitError(message string, err error) *ExitError {
	code, kind := classify(err)
	return &ExitError{Code: code, Kind: kind, Message: message, Err: err}
}

// classify maps core error kinds onto exit and diagnostic codes.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, codec.ErrFormat):
		return ExitInputError, CodeFormat
	case errors.Is(err, codec.ErrIO):
		return ExitInputError, CodeIO
	case errors.Is(err, matrix.ErrUnknownOperation):
		return ExitInputError, CodeOperation
	case errors.Is(err, config.ErrInvalid):
		return ExitInputError, CodeConfig
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return ExitFailure, CodeDimension
	case errors.Is(err, matrix.ErrOverflow):
		return ExitFailure, CodeOverflow
	}
	return ExitFailure, CodeOperation
}

// GetExitCode extracts the exit code from an error.
// Errors that did not come through WrapExitError (cobra usage errors) map to
// ExitInputError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitInputError
}

// errorKind returns the diagnostic code for err.
func errorKind(err error) string {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Kind
	}
	return CodeUsage
}

// Result is the payload reported after a successful operation.
type Result struct {
	Operation string   `json:"operation"`
	Inputs    []string `json:"inputs"`
	Output    string   `json:"output"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	NonZero   int      `json:"nnz"`
}

// Response is the JSON envelope for CLI output.
type Response struct {
	Status string        `json:"status"`          // "ok" or "error"
	Data   *Result       `json:"data,omitempty"`  // success payload
	Error  *ErrorPayload `json:"error,omitempty"` // error details
}

// ErrorPayload is the error structure for JSON responses.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OutputFormatter handles JSON vs text output.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // text-mode diagnostics (defaults to Writer)
}

// Success reports a completed operation.
func (f *OutputFormatter) Success(r *Result) error {
	if f.Format == FormatJSON {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: r})
	}

	_, err := fmt.Fprintf(f.Writer, "Sparse matrix operation completed successfully!\nOutput file: %s\n", r.Output)
	return err
}

// Error reports a failure as a single diagnostic line (text) or an error
// envelope (JSON, written to Writer so the stream stays parseable).
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == FormatJSON {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status: "error",
			Error:  &ErrorPayload{Code: code, Message: message},
		})
	}

	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	_, err := fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	return err
}
