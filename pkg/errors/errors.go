// Package errors provides coded errors shared by the rinkplot CLI and server.
//
// # Error Codes
//
//   - INVALID_*: bad user input. HTTP 400, exit status 2.
//   - NOT_FOUND, FILE_NOT_FOUND: HTTP 404, exit status 3.
//   - TIMEOUT: a render ran past its deadline. HTTP 504.
//   - UNSUPPORTED: HTTP 501.
//   - NETWORK_ERROR, INTERNAL_ERROR and uncoded errors: HTTP 500, exit status 1.
//
// [HTTPStatus] and [ExitCode] apply this table.
//
// Display ranges are never validated: the rink package maps any range it
// cannot interpret to the full rink.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", f)
//	if errors.IsInvalid(err) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "render %s", format)
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle       Code = "INVALID_STYLE"
	ErrCodeInvalidOrientation Code = "INVALID_ORIENTATION"
	ErrCodeInvalidSize        Code = "INVALID_SIZE"
	ErrCodeInvalidPath        Code = "INVALID_PATH"
	ErrCodeInvalidConfig      Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Network errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error carries a Code, a message fit for users and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost *Error without its code
// or cause, or err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err carries an INVALID_* code.
func IsInvalid(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "INVALID_")
}

// HTTPStatus maps err to a response status. A deadline exceeded anywhere in
// the chain is a 504 even without a code.
func HTTPStatus(err error) int {
	switch code := GetCode(err); {
	case IsInvalid(err):
		return http.StatusBadRequest
	case code == ErrCodeNotFound, code == ErrCodeFileNotFound:
		return http.StatusNotFound
	case code == ErrCodeTimeout, errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case code == ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

// ExitCode maps err to a process exit status: 0 for nil, 2 for invalid
// input, 3 for missing files and 1 otherwise.
func ExitCode(err error) int {
	switch code := GetCode(err); {
	case err == nil:
		return 0
	case IsInvalid(err):
		return 2
	case code == ErrCodeNotFound, code == ErrCodeFileNotFound:
		return 3
	}
	return 1
}
