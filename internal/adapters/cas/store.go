// Package cas implements the persistent emit cache.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EmitCache = (*Store)(nil)

// Store implements ports.EmitCache using one JSON file per key.
// Entries read or written during the process lifetime are kept in memory.
type Store struct {
	dir string

	mu     sync.RWMutex
	memory map[string]domain.EmitOutput
}

// NewStore creates a Store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{
		dir:    filepath.Clean(dir),
		memory: make(map[string]domain.EmitOutput),
	}
}

// Dir returns the directory entries are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Get retrieves the emit output stored under key.
func (s *Store) Get(key string) (*domain.EmitOutput, error) {
	s.mu.RLock()
	out, ok := s.memory[key]
	s.mu.RUnlock()
	if ok {
		return &out, nil
	}

	//nolint:gosec // Path is constructed from the store directory and a hashed key
	data, err := os.ReadFile(s.filename(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	s.mu.Lock()
	s.memory[key] = out
	s.mu.Unlock()

	return &out, nil
}

// Put stores out under key.
func (s *Store) Put(key string, out domain.EmitOutput) error {
	s.mu.Lock()
	s.memory[key] = out
	s.mu.Unlock()

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from the store directory and a hashed key
	if err := os.WriteFile(s.filename(key), data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(key string) string {
	return filepath.Join(s.dir, key+".json")
}
