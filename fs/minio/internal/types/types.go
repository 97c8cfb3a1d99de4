// Package types provides shared type definitions for the minio filesystem.
package types // nolint:revive // Internal package with clear purpose

import (
	"io/fs"
	"time"
)

// FileInfo implements fs.FileInfo for MinIO objects.
type FileInfo struct {
	FileName    string
	FileSize    int64
	FileModTime time.Time
}

// Name returns the base name of the object.
func (fi *FileInfo) Name() string { return fi.FileName }

// Size returns the object length in bytes.
func (fi *FileInfo) Size() int64 { return fi.FileSize }

// Mode returns 0644; objects carry no permission bits.
func (fi *FileInfo) Mode() fs.FileMode { return 0o644 }

// ModTime returns the last modification time.
func (fi *FileInfo) ModTime() time.Time { return fi.FileModTime }

// IsDir always returns false; only objects are described.
func (fi *FileInfo) IsDir() bool { return false }

// Sys returns nil.
func (fi *FileInfo) Sys() interface{} { return nil }

// NewFileInfo creates a new FileInfo.
func NewFileInfo(name string, size int64, modTime time.Time) *FileInfo {
	return &FileInfo{
		FileName:    name,
		FileSize:    size,
		FileModTime: modTime,
	}
}

var _ fs.FileInfo = (*FileInfo)(nil)
