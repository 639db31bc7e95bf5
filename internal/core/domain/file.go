package domain

import "strings"

// FileEntry is the cached state of one source file known to an instance.
// Version starts at 1 and increases by one on every content update.
type FileEntry struct {
	Version int
	Text    string
}

// Snapshot is an immutable view of a file's content at a given version.
type Snapshot struct {
	Path    string
	Version int
	Text    string
}

var definitionSuffixes = []string{".d.ts", ".d.mts", ".d.cts"}

var sourceSuffixes = []string{".ts", ".tsx", ".mts", ".cts"}

// IsDefinition reports whether path names a declaration-only file.
func IsDefinition(path string) bool {
	for _, suffix := range definitionSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// IsSource reports whether path names a file the compiler accepts as input,
// declaration files included.
func IsSource(path string) bool {
	for _, suffix := range sourceSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
