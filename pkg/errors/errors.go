// Package errors provides structured error types for the wordchain application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Chaining failures carry one of four codes:
//   - NO_PATH: the words cannot be arranged into any open chain
//   - NO_CIRCUIT: the words cannot be arranged into a closed loop
//   - SINGLE_WORD_NOT_CIRCULAR: a lone word whose first and last letters differ
//   - INTERNAL_INCONSISTENCY: an extracted circuit failed its closure re-check
//
// The remaining codes cover input validation, lookups and unexpected failures.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoPath, "no Eulerian path exists")
//	if errors.Is(err, errors.ErrCodeNoPath) {
//	    // Handle unchainable input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Chaining errors
	ErrCodeNoPath                Code = "NO_PATH"
	ErrCodeNoCircuit             Code = "NO_CIRCUIT"
	ErrCodeSingleWordNotCircular Code = "SINGLE_WORD_NOT_CIRCULAR"
	ErrCodeInternalInconsistency Code = "INTERNAL_INCONSISTENCY"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidMode  Code = "INVALID_MODE"
	ErrCodeInvalidPath  Code = "INVALID_PATH"
	ErrCodeNoWords      Code = "NO_WORDS"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsUnchainable reports whether err means the word graph admits no Eulerian
// path or circuit. Callers typically answer these with an empty result instead
// of aborting. A lone non-circular word is an input error, not unchainable.
func IsUnchainable(err error) bool {
	switch GetCode(err) {
	case ErrCodeNoPath, ErrCodeNoCircuit:
		return true
	}
	return false
}

// IsInputError reports whether err was caused by the caller's input rather
// than by the program itself.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidMode, ErrCodeInvalidPath, ErrCodeNoWords, ErrCodeSingleWordNotCircular:
		return true
	}
	return IsUnchainable(err)
}
