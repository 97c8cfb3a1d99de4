package loader

import (
	"github.com/jmgilman/textload/errors"
)

// Reason is the closed set of failure kinds a Loader reports.
type Reason string

const (
	// ReasonNotFound means the resource did not exist at call time.
	ReasonNotFound Reason = "NotFound"

	// ReasonCreateFailed means creating a missing resource failed.
	ReasonCreateFailed Reason = "CreateFailed"

	// ReasonReadFailed means the resource was opened but its content could
	// not be read in full, or was not valid text.
	ReasonReadFailed Reason = "ReadFailed"

	// ReasonOther means opening failed for a reason other than absence.
	ReasonOther Reason = "Other"
)

// Code returns the error code a Loader uses for r.
func (r Reason) Code() errors.ErrorCode {
	switch r {
	case ReasonNotFound:
		return errors.CodeNotFound
	case ReasonCreateFailed:
		return errors.CodeCreateFailed
	case ReasonReadFailed:
		return errors.CodeReadFailed
	default:
		return errors.CodeOpenFailed
	}
}

// ReasonOf classifies err. It returns "" for a nil error and ReasonOther for
// errors that carry none of the loader's codes.
func ReasonOf(err error) Reason {
	if err == nil {
		return ""
	}

	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		return ReasonNotFound
	case errors.CodeCreateFailed:
		return ReasonCreateFailed
	case errors.CodeReadFailed:
		return ReasonReadFailed
	default:
		return ReasonOther
	}
}

// Diagnostic returns the underlying storage diagnostic carried by err, or ""
// if err carries none. It is meant for logs, not for branching.
func Diagnostic(err error) string {
	var platformErr errors.PlatformError
	if !errors.As(err, &platformErr) {
		return ""
	}
	if cause := platformErr.Unwrap(); cause != nil {
		return cause.Error()
	}
	return ""
}
