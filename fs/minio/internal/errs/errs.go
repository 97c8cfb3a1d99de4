// Package errs translates MinIO client errors into the core.FS error contract.
package errs

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/jmgilman/textload/errors"
	"github.com/minio/minio-go/v7"
)

// Translate converts a MinIO error into the core.FS contract.
//
// Absence becomes fs.ErrNotExist and denied access becomes fs.ErrPermission.
// Everything else is returned as a PlatformError wrapping err: transport
// failures are CodeNetwork, exceeded deadlines CodeTimeout, 5xx responses
// CodeUnavailable (all retryable) and the remaining S3 errors CodeUnknown.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, errors.CodeTimeout, "minio request timed out")
	}

	errResp := minio.ToErrorResponse(err)

	switch errResp.Code {
	case "NoSuchKey", "NoSuchBucket":
		return fs.ErrNotExist
	case "AccessDenied":
		return fs.ErrPermission
	}

	switch {
	case errResp.StatusCode >= http.StatusInternalServerError:
		return errors.Wrapf(err, errors.CodeUnavailable, "minio: %s", errResp.Code)
	case errResp.Code == "" && errResp.StatusCode == 0:
		return errors.Wrap(err, errors.CodeNetwork, "minio request failed")
	default:
		return errors.Wrapf(err, errors.CodeUnknown, "minio: %s", errResp.Code)
	}
}

// PathError wraps an error in a fs.PathError for the given operation and path.
// If the error is nil, returns nil.
func PathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}

// PathErrorf creates a fs.PathError with a formatted error message.
func PathErrorf(op, path, format string, args ...interface{}) error {
	return &fs.PathError{Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}
