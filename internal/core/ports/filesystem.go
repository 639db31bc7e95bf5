package ports

import "io/fs"

// FileSystem abstracts the disk reads the loader performs.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for name.
	Stat(name string) (fs.FileInfo, error)
	// ReadFile reads the whole file.
	ReadFile(name string) ([]byte, error)
	// WalkDir walks the file tree rooted at root.
	WalkDir(root string, fn fs.WalkDirFunc) error
}
