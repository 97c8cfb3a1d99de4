package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/textload/fs/core"
)

// LocalFS wraps billy's osfs for disk-backed resources.
type LocalFS struct {
	adapter
}

// MemoryFS wraps billy's memfs for in-memory resources.
type MemoryFS struct {
	adapter
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot roots a local filesystem at dir. Resource names are resolved
// relative to dir. The default root is "/".
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{root: "/"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// NewLocal creates a go-billy-backed local filesystem.
func NewLocal(opts ...Option) *LocalFS {
	cfg := newConfig(opts)
	return &LocalFS{adapter{bfs: osfs.New(cfg.root)}}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{adapter{bfs: memfs.New()}}
}

// Type returns core.FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Type returns core.FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// adapter implements the provider-independent part of core.FS on top of any
// billy.Filesystem.
type adapter struct {
	bfs billy.Filesystem
}

// Unwrap returns the underlying billy.Filesystem.
func (a adapter) Unwrap() billy.Filesystem {
	return a.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// Open opens the named resource for reading.
// Directories open as handles whose reads fail, as they do on disk.
func (a adapter) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := a.bfs.Open(name)
	if err != nil {
		if info, statErr := a.bfs.Stat(name); statErr == nil && info.IsDir() {
			return &dirFile{name: name, info: info}, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			if err := core.CheckAncestors("open", name, a.bfs.Stat); err != nil {
				return nil, err
			}
		}
		return nil, err
	}
	return &File{file: f, fs: a.bfs, name: name}, nil
}

// Stat returns metadata for the named resource.
func (a adapter) Stat(name string) (fs.FileInfo, error) {
	return a.bfs.Stat(normalize(name))
}

// ReadFile reads the named resource and returns its contents.
func (a adapter) ReadFile(name string) ([]byte, error) {
	f, err := a.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named resource exists.
func (a adapter) Exists(name string) (bool, error) {
	_, err := a.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named resource.
// billy creates missing parent directories.
func (a adapter) Create(name string) (core.File, error) {
	name = normalize(name)
	if err := core.CheckAncestors("create", name, a.bfs.Stat); err != nil {
		return nil, err
	}
	f, err := a.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: a.bfs, name: name}, nil
}

// WriteFile writes data to the named resource, creating it if necessary.
func (a adapter) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	if err := core.CheckAncestors("open", name, a.bfs.Stat); err != nil {
		return err
	}
	f, err := a.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Remove removes the named resource.
func (a adapter) Remove(name string) error {
	return a.bfs.Remove(normalize(name))
}

// Compile-time interface checks.
var (
	_ core.FS = (*LocalFS)(nil)
	_ core.FS = (*MemoryFS)(nil)
)
