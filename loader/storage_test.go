package loader

import (
	"io/fs"

	"github.com/jmgilman/textload/fs/core"
)

// faultStorage wraps a core.FS and injects failures into individual steps.
// It also counts the handles it hands out and how many were closed.
type faultStorage struct {
	core.FS

	openErr        error
	readErr        error
	createErr      error
	createCloseErr error

	opened  int
	closed  int
	created int
}

func (s *faultStorage) Open(name string) (fs.File, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	f, err := s.FS.Open(name)
	if err != nil {
		return nil, err
	}
	s.opened++
	return &faultFile{File: f, storage: s}, nil
}

func (s *faultStorage) Create(name string) (core.File, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.createCloseErr != nil {
		return &failingCreate{name: name, err: s.createCloseErr}, nil
	}
	s.created++
	return s.FS.Create(name)
}

// faultFile counts Close calls and fails reads when readErr is set.
type faultFile struct {
	fs.File
	storage *faultStorage
}

func (f *faultFile) Read(p []byte) (int, error) {
	if f.storage.readErr != nil {
		return 0, f.storage.readErr
	}
	return f.File.Read(p)
}

func (f *faultFile) Close() error {
	f.storage.closed++
	return f.File.Close()
}

// failingCreate accepts writes and fails on Close, like an upload rejected
// by a remote backend. Nothing is ever stored.
type failingCreate struct {
	name string
	err  error
}

func (f *failingCreate) Read([]byte) (int, error)    { return 0, fs.ErrInvalid }
func (f *failingCreate) Write(p []byte) (int, error) { return len(p), nil }
func (f *failingCreate) Stat() (fs.FileInfo, error)  { return nil, fs.ErrInvalid }
func (f *failingCreate) Close() error                { return f.err }
func (f *failingCreate) Name() string                { return f.name }
