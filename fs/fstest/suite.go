// Package fstest provides a conformance suite for storage providers.
//
// The suite checks the parts of the core.FS contract the loader depends on:
// absence is reported as fs.ErrNotExist, Create followed by Close yields an
// empty resource, content round-trips byte for byte, and Remove makes a
// resource absent again.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/textload/fs/core"
)

// FSTestConfig adapts the suite to documented provider differences.
type FSTestConfig struct {
	// IdempotentDelete indicates Remove succeeds on absent resources
	// (object storage) instead of returning fs.ErrNotExist.
	IdempotentDelete bool

	// SkipTests lists subtests to skip, as "Group/Name"
	// (e.g., "ManageFS/RemoveNotExist").
	SkipTests []string
}

// POSIXTestConfig returns configuration for local and memory providers.
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{IdempotentDelete: false}
}

// S3TestConfig returns configuration for S3-compatible providers.
func S3TestConfig() FSTestConfig {
	return FSTestConfig{
		IdempotentDelete: true,
		// Object keys have no directories: "a" and "a/b" are independent.
		SkipTests: []string{
			"ReadFS/OpenDirectory",
			"ReadFS/OpenUnderFile",
			"WriteFS/CreateUnderFile",
		},
	}
}

// TestSuite runs the conformance suite with POSIXTestConfig.
// newFS must return a fresh, empty filesystem on every call.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, POSIXTestConfig())
}

// TestSuiteWithConfig runs the conformance suite with the given configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFSWithConfig(t, newFS(), config)
	})
	t.Run("WriteFS", func(t *testing.T) {
		TestWriteFSWithConfig(t, newFS(), config)
	})
	t.Run("ManageFS", func(t *testing.T) {
		TestManageFSWithConfig(t, newFS(), config)
	})
}

// run runs fn as subtest group/name unless the configuration skips it.
func run(t *testing.T, config FSTestConfig, group, name string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if slices.Contains(config.SkipTests, group+"/"+name) {
			t.Skip("Skipped by provider configuration")
		}
		fn(t)
	})
}
