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
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Workspace errors
	ErrWorkspaceNotFound ErrorCode = "WORKSPACE_NOT_FOUND"
	ErrWorkspaceAccess   ErrorCode = "WORKSPACE_ACCESS"

	// File discovery errors
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"
	ErrFindCanceled   ErrorCode = "FIND_CANCELED"

	// Per-file errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileEmpty    ErrorCode = "FILE_EMPTY"
	ErrParseFailure ErrorCode = "PARSE_FAILURE"
)

// ModscanError represents a structured error with code and details
type ModscanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ModscanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ModscanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ModscanError) Is(target error) bool {
	var targetErr *ModscanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ModscanError with the given code and message
func New(code ErrorCode, message string) *ModscanError {
	return &ModscanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModscanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModscanError {
	return &ModscanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModscanError
func Wrap(err error, code ErrorCode, message string) *ModscanError {
	if err == nil {
		return nil
	}
	return &ModscanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModscanError {
	if err == nil {
		return nil
	}
	return &ModscanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ModscanError) WithDetail(key string, value interface{}) *ModscanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scanErr *ModscanError
	if errors.As(err, &scanErr) {
		return scanErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ModscanError
func GetErrorCode(err error) ErrorCode {
	var scanErr *ModscanError
	if errors.As(err, &scanErr) {
		return scanErr.Code
	}
	return ErrUnknown
}
