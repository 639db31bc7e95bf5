package fs

import (
	iofs "io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/tsload/internal/core/ports"
)

// skippedDirs are never descended into.
var skippedDirs = map[string]struct{}{
	".git":         {},
	".jj":          {},
	".tsload":      {},
	"node_modules": {},
}

// WalkFiles yields every regular file below root, skipping version control,
// dependency and tool directories. Unreadable entries are skipped.
func WalkFiles(fsys ports.FileSystem, root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = fsys.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if _, skip := skippedDirs[d.Name()]; skip && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
