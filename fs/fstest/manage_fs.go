package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/textload/fs/core"
)

// TestManageFS tests Remove with POSIXTestConfig.
func TestManageFS(t *testing.T, filesystem core.FS) {
	TestManageFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestManageFSWithConfig tests resource removal with behavior configuration.
func TestManageFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	run(t, config, "ManageFS", "RemoveFile", func(t *testing.T) {
		testManageFSRemoveFile(t, filesystem)
	})
	run(t, config, "ManageFS", "RemoveNotExist", func(t *testing.T) {
		testManageFSRemoveNotExist(t, filesystem, config)
	})
}

// testManageFSRemoveFile verifies a removed resource is reported absent.
func testManageFSRemoveFile(t *testing.T, filesystem core.FS) {
	if err := filesystem.WriteFile("remove.txt", []byte("bye"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", "remove.txt", err)
	}

	if err := filesystem.Remove("remove.txt"); err != nil {
		t.Fatalf("Remove(%q): got error %v, want nil", "remove.txt", err)
	}

	if _, err := filesystem.Open("remove.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(%q) after Remove: got error %v, want fs.ErrNotExist", "remove.txt", err)
	}
}

func testManageFSRemoveNotExist(t *testing.T, filesystem core.FS, config FSTestConfig) {
	err := filesystem.Remove("never-existed.txt")
	if config.IdempotentDelete {
		if err != nil {
			t.Errorf("Remove(%q): got error %v, want nil (idempotent delete)", "never-existed.txt", err)
		}
		return
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Remove(%q): got error %v, want fs.ErrNotExist", "never-existed.txt", err)
	}
}
