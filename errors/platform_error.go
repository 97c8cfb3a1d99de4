package errors

import (
	"fmt"
	"log/slog"
	"maps"
)

// platformError is the concrete implementation of PlatformError.
// It is private to enforce construction through package functions.
type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *platformError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *platformError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil when none is attached.
func (e *platformError) Context() map[string]interface{} {
	return maps.Clone(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *platformError) Unwrap() error {
	return e.cause
}

// LogValue implements slog.LogValuer so errors log as structured groups.
func (e *platformError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4+len(e.context))
	attrs = append(attrs,
		slog.String("code", string(e.code)),
		slog.String("classification", string(e.classification)),
		slog.String("message", e.message),
	)
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	for _, k := range sortedKeys(e.context) {
		attrs = append(attrs, slog.Any(k, e.context[k]))
	}
	return slog.GroupValue(attrs...)
}

var (
	_ PlatformError  = (*platformError)(nil)
	_ slog.LogValuer = (*platformError)(nil)
)
