package afero

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/jmgilman/textload/fs/core"
	"github.com/spf13/afero"
)

// AferoFS adapts an afero.Fs to core.FS.
//
//nolint:revive // AferoFS name is intentional to match MinioFS
type AferoFS struct {
	afs    afero.Fs
	fsType core.FSType
}

// New adapts afs. The storage type is reported as core.FSTypeUnknown.
func New(afs afero.Fs) *AferoFS {
	return &AferoFS{afs: afs, fsType: core.FSTypeUnknown}
}

// NewMemory creates an empty afero in-memory filesystem.
func NewMemory() *AferoFS {
	return &AferoFS{afs: afero.NewMemMapFs(), fsType: core.FSTypeMemory}
}

// NewOS creates a disk filesystem rooted at root. Names cannot escape root.
func NewOS(root string) *AferoFS {
	return &AferoFS{
		afs:    afero.NewBasePathFs(afero.NewOsFs(), root),
		fsType: core.FSTypeLocal,
	}
}

// ReadOnly returns a view of base that rejects every modification with an
// error satisfying errors.Is(err, fs.ErrPermission).
func ReadOnly(base *AferoFS) *AferoFS {
	return &AferoFS{afs: afero.NewReadOnlyFs(base.afs), fsType: base.fsType}
}

// Unwrap returns the underlying afero.Fs.
func (a *AferoFS) Unwrap() afero.Fs {
	return a.afs
}

// Type returns the storage type chosen at construction.
func (a *AferoFS) Type() core.FSType {
	return a.fsType
}

func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

// Open opens the named resource for reading.
func (a *AferoFS) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := a.afs.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := core.CheckAncestors("open", name, a.afs.Stat); err != nil {
				return nil, err
			}
		}
		return nil, err
	}
	return &File{File: f, name: name}, nil
}

// Stat returns metadata for the named resource.
func (a *AferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.afs.Stat(normalize(name))
}

// ReadFile reads the named resource and returns its contents.
func (a *AferoFS) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(a.afs, normalize(name))
}

// Exists reports whether the named resource exists.
func (a *AferoFS) Exists(name string) (bool, error) {
	_, err := a.afs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named resource, making missing parents.
func (a *AferoFS) Create(name string) (core.File, error) {
	name = normalize(name)
	if err := a.mkdirParent(name); err != nil {
		return nil, err
	}
	f, err := a.afs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{File: f, name: name}, nil
}

// WriteFile writes data to the named resource, creating it if necessary.
func (a *AferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	if err := a.mkdirParent(name); err != nil {
		return err
	}
	return afero.WriteFile(a.afs, name, data, perm)
}

// Remove removes the named resource.
func (a *AferoFS) Remove(name string) error {
	return a.afs.Remove(normalize(name))
}

// mkdirParent creates the missing parents of name. It fails with ENOTDIR when
// an existing ancestor is a regular file.
func (a *AferoFS) mkdirParent(name string) error {
	dir := path.Dir(name)
	if dir == "." || dir == "/" {
		return nil
	}
	if exists, err := afero.DirExists(a.afs, dir); err == nil && exists {
		return nil
	}
	if err := core.CheckAncestors("create", name, a.afs.Stat); err != nil {
		return err
	}
	return a.afs.MkdirAll(dir, 0o755)
}

var _ core.FS = (*AferoFS)(nil)
