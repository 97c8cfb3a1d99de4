package errors

// ErrorClassification indicates whether a failed operation may succeed if the
// caller tries again. Nothing in textload retries; the classification is
// information for the caller's own policy.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: network timeouts, an unavailable storage backend.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: missing resources, permission denials, invalid text.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry may help.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeNetwork:     ClassificationRetryable,
	CodeTimeout:     ClassificationRetryable,
	CodeUnavailable: ClassificationRetryable,

	CodeNotFound:      ClassificationPermanent,
	CodeCreateFailed:  ClassificationPermanent,
	CodeReadFailed:    ClassificationPermanent,
	CodeOpenFailed:    ClassificationPermanent,
	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,
	CodeInternal:      ClassificationPermanent,
	CodeUnknown:       ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unmapped codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
