package core_test

import (
	"testing"

	"github.com/jmgilman/textload/fs/core"
)

func TestFSType_String(t *testing.T) {
	tests := map[core.FSType]string{
		core.FSTypeUnknown: "unknown",
		core.FSTypeLocal:   "local",
		core.FSTypeMemory:  "memory",
		core.FSTypeRemote:  "remote",
		core.FSType(42):    "unknown",
	}

	for fsType, want := range tests {
		if got := fsType.String(); got != want {
			t.Errorf("FSType(%d).String() = %q, want %q", int(fsType), got, want)
		}
	}
}

// TestFSType_ZeroValue verifies an unset FSType reads as unknown.
func TestFSType_ZeroValue(t *testing.T) {
	var fsType core.FSType
	if fsType != core.FSTypeUnknown {
		t.Errorf("zero FSType = %v, want %v", fsType, core.FSTypeUnknown)
	}
}
