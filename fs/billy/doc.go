// Package billy provides go-billy-backed storage for the core.FS contract.
//
// LocalFS wraps osfs and MemoryFS wraps memfs:
//
//	// Disk, rooted at a directory
//	storage := billy.NewLocal(billy.WithRoot("/var/lib/app"))
//
//	// In memory, for tests
//	storage := billy.NewMemory()
//
// Both report missing resources with errors satisfying
// errors.Is(err, fs.ErrNotExist). Create makes missing parent directories.
//
// # Thread Safety
//
// LocalFS and MemoryFS are safe for concurrent use. File handles are not.
package billy
