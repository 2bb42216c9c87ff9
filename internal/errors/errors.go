// Package errors carries code-tagged errors for callers that need to branch
// on the kind of failure rather than its text.
package errors

import "errors"

// Code identifies a structured error type used across the application.
type Code string

const (
	CodeUnknown Code = "unknown"

	// Input errors
	CodeInvalidColor Code = "invalid_color"
	CodeUnknownField Code = "unknown_field"
	CodeParseFailed  Code = "parse_failed"

	// Infrastructure errors
	CodeStoreFailed        Code = "store_failed"
	CodeExportFailed       Code = "export_failed"
	CodeConfigurationError Code = "configuration_error"
)

// Error pairs a machine-readable code with a message and optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap returns the wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New wraps an error with a code/message.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// CodeOf walks the error chain and returns the first structured code found.
func CodeOf(err error) Code {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeUnknown
}

// IsCode reports whether the error (or its unwrap chain) matches code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
