package fstest

import (
	"bytes"
	"testing"

	"github.com/jmgilman/textload/fs/core"
)

// TestWriteFS tests Create and WriteFile with POSIXTestConfig.
func TestWriteFS(t *testing.T, filesystem core.FS) {
	TestWriteFSWithConfig(t, filesystem, POSIXTestConfig())
}

// TestWriteFSWithConfig tests write operations with behavior configuration.
func TestWriteFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	run(t, config, "WriteFS", "CreateEmpty", func(t *testing.T) {
		testWriteFSCreateEmpty(t, filesystem)
	})
	run(t, config, "WriteFS", "CreateAndWrite", func(t *testing.T) {
		testWriteFSCreateAndWrite(t, filesystem)
	})
	run(t, config, "WriteFS", "CreateTruncates", func(t *testing.T) {
		testWriteFSCreateTruncates(t, filesystem)
	})
	run(t, config, "WriteFS", "WriteFileRoundTrip", func(t *testing.T) {
		testWriteFSWriteFile(t, filesystem)
	})
	run(t, config, "WriteFS", "CreateUnderFile", func(t *testing.T) {
		testWriteFSCreateUnderFile(t, filesystem)
	})
}

// testWriteFSCreateEmpty verifies Create+Close leaves an existing, empty resource.
func testWriteFSCreateEmpty(t *testing.T, filesystem core.FS) {
	f, err := filesystem.Create("empty.txt")
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", "empty.txt", err)
	}
	if f.Name() != "empty.txt" {
		t.Errorf("Name(): got %q, want %q", f.Name(), "empty.txt")
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	exists, err := filesystem.Exists("empty.txt")
	if err != nil || !exists {
		t.Fatalf("Exists(%q) after Create: got (%v, %v), want (true, nil)", "empty.txt", exists, err)
	}

	data, err := filesystem.ReadFile("empty.txt")
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", "empty.txt", err)
	}
	if len(data) != 0 {
		t.Errorf("ReadFile(%q): got %d bytes, want 0", "empty.txt", len(data))
	}
}

func testWriteFSCreateAndWrite(t *testing.T, filesystem core.FS) {
	content := []byte("written through Create")

	f, err := filesystem.Create("created.txt")
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", "created.txt", err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile("created.txt")
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", "created.txt", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("ReadFile(%q): got %q, want %q", "created.txt", data, content)
	}
}

// testWriteFSCreateTruncates verifies Create on an existing resource empties it.
func testWriteFSCreateTruncates(t *testing.T, filesystem core.FS) {
	if err := filesystem.WriteFile("truncate.txt", []byte("old content"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", "truncate.txt", err)
	}

	f, err := filesystem.Create("truncate.txt")
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", "truncate.txt", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile("truncate.txt")
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", "truncate.txt", err)
	}
	if len(data) != 0 {
		t.Errorf("ReadFile(%q): got %q, want empty", "truncate.txt", data)
	}
}

// testWriteFSWriteFile verifies arbitrary bytes, including invalid UTF-8,
// survive a write and read unchanged.
func testWriteFSWriteFile(t *testing.T, filesystem core.FS) {
	content := []byte("line one\r\nline two\x00\xff\xfe tail")

	if err := filesystem.WriteFile("nested/dir/data.bin", content, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", "nested/dir/data.bin", err)
	}

	data, err := filesystem.ReadFile("nested/dir/data.bin")
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", "nested/dir/data.bin", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("ReadFile(%q): got %q, want %q", "nested/dir/data.bin", data, content)
	}
}

// testWriteFSCreateUnderFile verifies a resource cannot be created beneath a
// regular file, and the file is left intact.
func testWriteFSCreateUnderFile(t *testing.T, filesystem core.FS) {
	content := []byte("plain")
	if err := filesystem.WriteFile("plain.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", "plain.txt", err)
	}

	if f, err := filesystem.Create("plain.txt/child"); err == nil {
		_ = f.Close()
		t.Errorf("Create(%q): got nil error, want failure", "plain.txt/child")
	}
	if err := filesystem.WriteFile("plain.txt/deeper/child", []byte("x"), 0o644); err == nil {
		t.Errorf("WriteFile(%q): got nil error, want failure", "plain.txt/deeper/child")
	}

	data, err := filesystem.ReadFile("plain.txt")
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", "plain.txt", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("ReadFile(%q): got %q, want %q", "plain.txt", data, content)
	}
}
