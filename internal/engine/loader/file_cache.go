package loader

import "go.trai.ch/tsload/internal/core/domain"

// FileCache tracks the content and version of every file an instance has seen.
// It is not safe for concurrent use; the owning Instance serializes access.
type FileCache struct {
	entries map[domain.Path]*domain.FileEntry
	order   []domain.Path
	known   map[domain.Path]struct{}
}

// NewFileCache creates an empty cache.
func NewFileCache() *FileCache {
	return &FileCache{
		entries: make(map[domain.Path]*domain.FileEntry),
		known:   make(map[domain.Path]struct{}),
	}
}

// Get returns the entry for path.
func (c *FileCache) Get(path string) (domain.FileEntry, bool) {
	e, ok := c.entries[domain.NewPath(path)]
	if !ok {
		return domain.FileEntry{}, false
	}
	return *e, true
}

// Update stores text for path. A new entry starts at version 1 and every
// later update increments the version, whether or not the text changed.
func (c *FileCache) Update(path, text string) domain.FileEntry {
	p := domain.NewPath(path)
	c.touch(p)
	e, ok := c.entries[p]
	if !ok {
		e = &domain.FileEntry{}
		c.entries[p] = e
	}
	e.Version++
	e.Text = text
	return *e
}

// Evict removes the entry for path. The path stays in the request order.
func (c *FileCache) Evict(path string) {
	delete(c.entries, domain.NewPath(path))
}

// Paths returns every path ever stored, in first-request order.
func (c *FileCache) Paths() []string {
	out := make([]string, len(c.order))
	for i, p := range c.order {
		out[i] = p.String()
	}
	return out
}

// Len returns the number of live entries.
func (c *FileCache) Len() int {
	return len(c.entries)
}

func (c *FileCache) touch(p domain.Path) {
	if _, ok := c.known[p]; ok {
		return
	}
	c.known[p] = struct{}{}
	c.order = append(c.order, p)
}
