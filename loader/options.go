package loader

import "log/slog"

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger. Attempts and successful loads log at Debug,
// recovery by creation at Info, and returned failures at Warn (Debug for
// NotFound). The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithUTF8Validation controls whether content must be valid UTF-8.
// Enabled by default; invalid content fails with ReasonReadFailed and cause
// ErrInvalidText.
func WithUTF8Validation(enabled bool) Option {
	return func(l *Loader) {
		l.validateUTF8 = enabled
	}
}
