package afero

import (
	"github.com/jmgilman/textload/fs/core"
	"github.com/spf13/afero"
)

// File wraps afero.File so Name reports the name given to Open or Create.
// afero's base-path filesystem would otherwise return it with a leading
// separator.
type File struct {
	afero.File
	name string
}

// Name returns the name provided to Open or Create.
func (f *File) Name() string {
	return f.name
}

var _ core.File = (*File)(nil)
