package errors

import "fmt"

// New creates a new PlatformError with the given code and message.
// The classification is the default for the code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidConfig, "bucket is required")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new PlatformError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "resource name %q is not valid", name)
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}
