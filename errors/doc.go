// Package errors provides the structured errors used across textload.
//
// Every failure surfaced by the loader and the storage providers is a
// PlatformError: an error carrying a code from a closed set, a retry
// classification, a human-readable message, optional context metadata and the
// underlying cause. The package stays compatible with the standard library
// (errors.Is, errors.As, errors.Unwrap all see through a PlatformError).
//
// # Creating and wrapping
//
//	err := errors.New(errors.CodeInvalidConfig, "bucket is required")
//
//	f, err := storage.Open(name)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeOpenFailed, "failed to open resource")
//	}
//
// # Codes
//
// The resource codes map onto the loader's failure reasons:
//
//   - CodeNotFound: the resource does not exist
//   - CodeCreateFailed: creating a missing resource failed
//   - CodeReadFailed: the resource was opened but could not be read in full
//   - CodeOpenFailed: opening failed for a reason other than absence
//
// Provider and validation codes (CodeNetwork, CodeInvalidConfig, ...) describe
// causes that the loader wraps.
//
// # Classification
//
// Each code has a default classification. Wrap preserves the classification of
// a PlatformError cause, so a retryable network failure stays retryable after
// the loader wraps it as CodeOpenFailed:
//
//	if errors.IsRetryable(err) {
//	    // caller-owned retry policy
//	}
//
// # Logging
//
// PlatformError values implement slog.LogValuer and render as a group holding
// the code, classification, message, cause and any context fields.
package errors
