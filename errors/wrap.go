package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Wrap wraps err with a code and message while keeping err reachable through
// Unwrap, errors.Is and errors.As.
//
// If err is (or wraps) a PlatformError, its classification is kept. Otherwise
// the default classification for code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	f, err := storage.Create(name)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeCreateFailed, "failed to create resource")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	return &platformError{
		code:           code,
		classification: inheritClassification(err, code),
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in one step.
// The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeReadFailed, "failed to read resource", map[string]interface{}{
//	    "resource": name,
//	    "op":       "read",
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	return &platformError{
		code:           code,
		classification: inheritClassification(err, code),
		message:        message,
		context:        maps.Clone(ctx),
		cause:          err,
	}
}

// inheritClassification returns the classification of the first PlatformError
// in err's chain, falling back to the default for code.
func inheritClassification(err error, code ErrorCode) ErrorClassification {
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Classification()
	}
	return getDefaultClassification(code)
}
