package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/textload/fs/core"
)

// TestReadFS tests Open, Stat, ReadFile and Exists with POSIXTestConfig.
func TestReadFS(t *testing.T, filesystem core.FS) {
	TestReadFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestReadFSWithConfig tests read operations with behavior configuration.
func TestReadFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	testContent := []byte("hello, world\n")

	if err := filesystem.WriteFile("testdir/testfile.txt", testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	run(t, config, "ReadFS", "OpenAndReadAll", func(t *testing.T) {
		testReadFSOpen(t, filesystem, testContent)
	})
	run(t, config, "ReadFS", "OpenNotExist", func(t *testing.T) {
		testReadFSOpenNotExist(t, filesystem)
	})
	run(t, config, "ReadFS", "StatFile", func(t *testing.T) {
		testReadFSStatFile(t, filesystem, testContent)
	})
	run(t, config, "ReadFS", "ReadFile", func(t *testing.T) {
		testReadFSReadFile(t, filesystem, testContent)
	})
	run(t, config, "ReadFS", "Exists", func(t *testing.T) {
		testReadFSExists(t, filesystem)
	})
	run(t, config, "ReadFS", "OpenDirectory", func(t *testing.T) {
		testReadFSOpenDirectory(t, filesystem)
	})
	run(t, config, "ReadFS", "OpenUnderFile", func(t *testing.T) {
		testReadFSOpenUnderFile(t, filesystem)
	})
}

// testReadFSOpen opens an existing resource and reads it to EOF.
func testReadFSOpen(t *testing.T, filesystem core.FS, testContent []byte) {
	f, err := filesystem.Open("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("Open(%q): got error %v, want nil", "testdir/testfile.txt", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadAll(): got %q, want %q", data, testContent)
	}
}

// testReadFSOpenNotExist verifies absence is reported as fs.ErrNotExist.
func testReadFSOpenNotExist(t *testing.T, filesystem core.FS) {
	f, err := filesystem.Open("nonexistent.txt")
	if err == nil {
		_ = f.Close()
		t.Fatalf("Open(%q): got nil error, want fs.ErrNotExist", "nonexistent.txt")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", "nonexistent.txt", err)
	}
	if errors.Is(err, fs.ErrPermission) {
		t.Errorf("Open(%q): absence must not be reported as fs.ErrPermission", "nonexistent.txt")
	}
}

func testReadFSStatFile(t *testing.T, filesystem core.FS, testContent []byte) {
	info, err := filesystem.Stat("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", "testdir/testfile.txt", err)
	}
	if info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = true, want false", "testdir/testfile.txt")
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("Stat(%q): Size() = %d, want %d", "testdir/testfile.txt", info.Size(), len(testContent))
	}
}

func testReadFSReadFile(t *testing.T, filesystem core.FS, testContent []byte) {
	data, err := filesystem.ReadFile("testdir/testfile.txt")
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", "testdir/testfile.txt", err)
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadFile(%q): got %q, want %q", "testdir/testfile.txt", data, testContent)
	}

	if _, err := filesystem.ReadFile("nonexistent.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(%q): got error %v, want fs.ErrNotExist", "nonexistent.txt", err)
	}
}

func testReadFSExists(t *testing.T, filesystem core.FS) {
	exists, err := filesystem.Exists("testdir/testfile.txt")
	if err != nil || !exists {
		t.Errorf("Exists(%q): got (%v, %v), want (true, nil)", "testdir/testfile.txt", exists, err)
	}

	exists, err = filesystem.Exists("nonexistent.txt")
	if err != nil || exists {
		t.Errorf("Exists(%q): got (%v, %v), want (false, nil)", "nonexistent.txt", exists, err)
	}
}

// testReadFSOpenDirectory verifies a directory is never mistaken for an empty
// resource: Open either fails without reporting absence, or returns a handle
// whose Stat reports a directory.
func testReadFSOpenDirectory(t *testing.T, filesystem core.FS) {
	f, err := filesystem.Open("testdir")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q): directory reported as fs.ErrNotExist", "testdir")
		}
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat() on directory handle: got error %v, want nil", err)
	}
	if !info.IsDir() {
		t.Errorf("Stat() on directory handle: IsDir() = false, want true")
	}
}

// testReadFSOpenUnderFile verifies a name nested under a regular file fails
// to open and is not reported as absent.
func testReadFSOpenUnderFile(t *testing.T, filesystem core.FS) {
	name := "testdir/testfile.txt/child"

	f, err := filesystem.Open(name)
	if err == nil {
		_ = f.Close()
		t.Fatalf("Open(%q): got nil error, want failure", name)
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(%q): got fs.ErrNotExist, want a not-a-directory failure", name)
	}
}
