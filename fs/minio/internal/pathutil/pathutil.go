// Package pathutil maps resource names onto MinIO/S3 object keys.
package pathutil

import (
	"path"
	"strings"
)

// Normalize cleans a name into an object key: backslashes become slashes,
// "." and ".." are resolved and surrounding slashes are trimmed.
// Returns "" for names that resolve to the root.
func Normalize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.Trim(path.Clean("/"+name), "/")
	return name
}

// JoinPath joins a normalized prefix with a name to create a full key.
func JoinPath(prefix, name string) string {
	name = Normalize(name)
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	default:
		return prefix + "/" + name
	}
}
