package billy

import (
	"io/fs"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/textload/fs/core"
)

// File wraps billy.File to implement core.File.
// It keeps the normalized name and the owning filesystem because billy.File
// has no Stat and its Name format varies by backend.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Read delegates to the underlying billy.File.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write delegates to the underlying billy.File.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close delegates to the underlying billy.File.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat stats the file through the owning filesystem.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to Open or Create.
func (f *File) Name() string {
	return f.name
}

// dirFile stands in for a directory the backend refuses to open.
type dirFile struct {
	name string
	info fs.FileInfo
}

func (d *dirFile) Stat() (fs.FileInfo, error) { return d.info, nil }
func (d *dirFile) Close() error               { return nil }

func (d *dirFile) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.name, Err: syscall.EISDIR}
}

var (
	_ core.File = (*File)(nil)
	_ fs.File   = (*File)(nil)
	_ fs.File   = (*dirFile)(nil)
)
