// Package core defines the storage contract that textload providers implement.
//
// The loader needs three primitives from storage: open-for-read, create-empty
// and read-all. FS bundles those with the handful of management calls
// (Stat, Exists, WriteFile, Remove) that callers and the conformance suite use
// to prepare and inspect resources.
//
// # Error contract
//
// Providers report absence with an error satisfying
// errors.Is(err, fs.ErrNotExist) and denied access with one satisfying
// errors.Is(err, fs.ErrPermission). The sentinels are re-exported here
// (ErrNotExist, ErrPermission, ...) for convenience. Everything else is
// passed through as the provider's own diagnostic.
//
// # Implementations
//
//   - github.com/jmgilman/textload/fs/billy - local disk and in-memory, backed by go-billy
//   - github.com/jmgilman/textload/fs/minio - S3-compatible object storage
//
// # Usage Example
//
//	func Seed(storage core.FS, name string) error {
//	    ok, err := storage.Exists(name)
//	    if err != nil || ok {
//	        return err
//	    }
//	    return storage.WriteFile(name, []byte("hello"), 0o644)
//	}
package core
