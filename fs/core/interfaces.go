package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of storage implementation.
type FSType int

const (
	// FSTypeUnknown indicates the storage type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates disk-backed storage.
	FSTypeLocal
	// FSTypeMemory indicates in-memory storage.
	FSTypeMemory
	// FSTypeRemote indicates remote storage (e.g., S3).
	FSTypeRemote
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	case FSTypeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// FS is the storage contract every provider implements.
// FS embeds fs.FS for stdlib compatibility.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying storage type.
	Type() FSType
}

// ReadFS defines read-only operations.
type ReadFS interface {
	// Open opens the named resource for reading.
	//
	// If the resource does not exist the returned error satisfies
	// errors.Is(err, fs.ErrNotExist). Any other failure to open is reported
	// with the provider's own diagnostic. The returned file must be closed.
	Open(name string) (fs.File, error)

	// Stat returns metadata for the named resource.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the named resource and returns its contents.
	// A successful call returns err == nil, not err == EOF.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named resource exists.
	// A false result with a non-nil error means existence could not be
	// determined.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named resource for writing.
	//
	// The resource is only guaranteed to exist once the returned File has
	// been closed without error. Remote providers upload on Close.
	Create(name string) (File, error)

	// WriteFile writes data to the named resource, creating it if necessary.
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// ManageFS defines resource removal.
type ManageFS interface {
	// Remove removes the named resource.
	// If the resource does not exist, Remove returns an error satisfying
	// errors.Is(err, fs.ErrNotExist) unless the provider documents that
	// deletes are idempotent.
	Remove(name string) error
}

// File represents an open resource handle with write support.
type File interface {
	fs.File
	io.Writer

	// Name returns the name of the resource as provided to Open or Create.
	Name() string
}
