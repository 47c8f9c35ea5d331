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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Scan errors
	ErrDirRead   ErrorCode = "DIR_READ"
	ErrFileStat  ErrorCode = "FILE_STAT"
	ErrDirAccess ErrorCode = "DIR_ACCESS"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// GeommatError represents a structured error with code and details
type GeommatError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GeommatError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GeommatError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GeommatError) Is(target error) bool {
	var targetErr *GeommatError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GeommatError with the given code and message
func New(code ErrorCode, message string) *GeommatError {
	return &GeommatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GeommatError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GeommatError {
	return &GeommatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GeommatError
func Wrap(err error, code ErrorCode, message string) *GeommatError {
	if err == nil {
		return nil
	}
	return &GeommatError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GeommatError {
	if err == nil {
		return nil
	}
	return &GeommatError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GeommatError) WithDetail(key string, value interface{}) *GeommatError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GeommatError) WithDetails(details map[string]interface{}) *GeommatError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var geomErr *GeommatError
	if errors.As(err, &geomErr) {
		return geomErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GeommatError
func GetErrorCode(err error) ErrorCode {
	var geomErr *GeommatError
	if errors.As(err, &geomErr) {
		return geomErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GeommatError
func GetErrorDetails(err error) map[string]interface{} {
	var geomErr *GeommatError
	if errors.As(err, &geomErr) {
		return geomErr.Details
	}
	return nil
}
