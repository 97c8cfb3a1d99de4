package core

import (
	"errors"
	"io/fs"
	"path"
	"syscall"
)

// CheckAncestors returns a *fs.PathError wrapping syscall.ENOTDIR when the
// nearest existing ancestor of name is not a directory. Disk filesystems
// report this themselves; in-memory backends would otherwise nest resources
// under a regular file. name must be slash-separated.
func CheckAncestors(op, name string, stat func(string) (fs.FileInfo, error)) error {
	for dir := path.Dir(name); dir != "." && dir != "/"; dir = path.Dir(dir) {
		info, err := stat(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return &fs.PathError{Op: op, Path: name, Err: syscall.ENOTDIR}
		}
		return nil
	}
	return nil
}
