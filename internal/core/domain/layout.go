package domain

import "path/filepath"

const (
	// ToolDirName is the name of the internal metadata directory.
	ToolDirName = ".tsload"

	// StoreDirName is the name of the emit cache directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the tool configuration file.
	ConfigFileName = "tsload.yaml"

	// ProjectFileName is the name of the project configuration file searched for by default.
	ProjectFileName = "tsconfig.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultToolPath returns the default root directory for tsload metadata.
func DefaultToolPath() string {
	return ToolDirName
}

// DefaultStorePath returns the default path for the emit cache.
// It joins .tsload and store.
func DefaultStorePath() string {
	return filepath.Join(ToolDirName, StoreDirName)
}
