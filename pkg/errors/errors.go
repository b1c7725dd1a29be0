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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Container errors
	ErrInvalidKey ErrorCode = "INVALID_KEY"

	// Export errors
	ErrNoIdentity        ErrorCode = "NO_IDENTITY"
	ErrNoRenderer        ErrorCode = "NO_RENDERER"
	ErrAmbiguousRenderer ErrorCode = "AMBIGUOUS_RENDERER"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Input errors
	ErrDecode            ErrorCode = "DECODE"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrFileAccess        ErrorCode = "FILE_ACCESS"
)

// ExporterError represents a structured error with code and details
type ExporterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ExporterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ExporterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ExporterError) Is(target error) bool {
	var targetErr *ExporterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ExporterError with the given code and message
func New(code ErrorCode, message string) *ExporterError {
	return &ExporterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ExporterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ExporterError {
	return &ExporterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ExporterError
func Wrap(err error, code ErrorCode, message string) *ExporterError {
	if err == nil {
		return nil
	}
	return &ExporterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ExporterError {
	if err == nil {
		return nil
	}
	return &ExporterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ExporterError) WithDetail(key string, value interface{}) *ExporterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var exporterErr *ExporterError
	if errors.As(err, &exporterErr) {
		return exporterErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ExporterError
func GetErrorCode(err error) ErrorCode {
	var exporterErr *ExporterError
	if errors.As(err, &exporterErr) {
		return exporterErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ExporterError
func GetErrorDetails(err error) map[string]interface{} {
	var exporterErr *ExporterError
	if errors.As(err, &exporterErr) {
		return exporterErr.Details
	}
	return nil
}

// CodeOf extracts the code carried by a recovered panic value.
// It returns ErrUnknown when the value is not an error.
func CodeOf(recovered interface{}) ErrorCode {
	err, ok := recovered.(error)
	if !ok {
		return ErrUnknown
	}
	return GetErrorCode(err)
}
