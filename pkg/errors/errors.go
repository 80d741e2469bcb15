// Package errors provides the coded error type used across cheatnav.
// Every failure that leaves a package carries a stable ErrorCode so callers
// and tests can branch on the category without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration source errors
	ErrSourceUnavailable      ErrorCode = "SOURCE_UNAVAILABLE"
	ErrDefaultPathUnavailable ErrorCode = "DEFAULT_PATH_UNAVAILABLE"

	// Configuration document errors
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// Detail keys attached by the configuration loader.
const (
	DetailSource = "source"
	DetailPath   = "path"
)

// CheatnavError represents a structured error with code and details
type CheatnavError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CheatnavError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CheatnavError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CheatnavError) Is(target error) bool {
	var targetErr *CheatnavError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CheatnavError with the given code and message
func New(code ErrorCode, message string) *CheatnavError {
	return &CheatnavError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CheatnavError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CheatnavError {
	return &CheatnavError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CheatnavError
func Wrap(err error, code ErrorCode, message string) *CheatnavError {
	if err == nil {
		return nil
	}
	return &CheatnavError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CheatnavError {
	if err == nil {
		return nil
	}
	return &CheatnavError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CheatnavError) WithDetail(key string, value interface{}) *CheatnavError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cnErr *CheatnavError
	if errors.As(err, &cnErr) {
		return cnErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CheatnavError
func GetErrorCode(err error) ErrorCode {
	var cnErr *CheatnavError
	if errors.As(err, &cnErr) {
		return cnErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CheatnavError
func GetErrorDetails(err error) map[string]interface{} {
	var cnErr *CheatnavError
	if errors.As(err, &cnErr) {
		return cnErr.Details
	}
	return nil
}

// ConfigOrigin reports which configuration source produced err and the file
// involved, if any. Both are empty when err did not come from loading.
func ConfigOrigin(err error) (source, path string) {
	details := GetErrorDetails(err)
	source, _ = details[DetailSource].(string)
	path, _ = details[DetailPath].(string)
	return source, path
}
