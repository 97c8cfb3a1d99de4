// Package afero provides spf13/afero-backed storage for the core.FS contract.
//
// Any afero.Fs can be adapted with New. NewMemory and NewOS cover the common
// cases, and ReadOnly layers afero's read-only filter over another provider
// so every write is rejected with a permission error:
//
//	storage := afero.NewOS("/etc/app")
//	l := loader.New(afero.ReadOnly(storage))
//
// Missing resources are reported with errors satisfying
// errors.Is(err, fs.ErrNotExist). Create makes missing parent directories.
package afero
