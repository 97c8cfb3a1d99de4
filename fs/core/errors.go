package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a resource does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a resource already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when an operation is performed on a closed file.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrUnsupported is returned when an operation is not supported by the
	// provider, for example writing through a read handle on object storage.
	ErrUnsupported = errors.New("operation not supported")
)
