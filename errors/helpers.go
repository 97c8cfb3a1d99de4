package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // Handle absence
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost PlatformError in err's
// chain. Returns CodeUnknown if err is nil or holds no PlatformError.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // Handle not found
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}

	return CodeUnknown
}

// GetClassification extracts the ErrorClassification from the outermost
// PlatformError in err's chain. Returns ClassificationPermanent if err is nil
// or holds no PlatformError.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if err is nil or not a PlatformError.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
