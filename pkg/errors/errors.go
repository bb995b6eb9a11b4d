// Package errors provides structured error types for the coretrack application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the generator pipeline
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes map to the failure kinds of the catalog pipeline:
//   - INVALID_*: Input validation failures (config file, repo references)
//   - TRANSPORT_ERROR: Non-success responses from the release-listing API
//   - DOWNLOAD_FAILED / EXTRACT_FAILED: Asset acquisition failures
//   - MALFORMED_DESCRIPTOR: A descriptor file exists but is not valid JSON
//   - NOT_A_CORE: The extracted asset carries no core descriptor (recoverable)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "missing display_name for %s", repo)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeDownloadFailed, origErr, "fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidRepo   Code = "INVALID_REPO"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Pipeline errors
	ErrCodeTransport           Code = "TRANSPORT_ERROR"
	ErrCodeDownloadFailed      Code = "DOWNLOAD_FAILED"
	ErrCodeExtractFailed       Code = "EXTRACT_FAILED"
	ErrCodeMalformedDescriptor Code = "MALFORMED_DESCRIPTOR"

	// ErrCodeNotACore marks an extracted asset without descriptors. Callers
	// treat it as "skip this channel", not as a fatal condition.
	ErrCodeNotACore Code = "NOT_A_CORE"

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
