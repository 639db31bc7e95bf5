package watcher

import (
	"slices"
	"sync"

	"go.trai.ch/tsload/internal/core/ports"
)

var _ ports.ChangeFeed = (*ChangeSet)(nil)

// ChangeSet accumulates changed paths between builds.
type ChangeSet struct {
	mu    sync.Mutex
	paths map[string]struct{}
}

// NewChangeSet creates an empty ChangeSet.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{paths: make(map[string]struct{})}
}

// Add records paths as changed.
func (c *ChangeSet) Add(paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range paths {
		c.paths[p] = struct{}{}
	}
}

// Drain returns the recorded paths in sorted order and clears the set.
func (c *ChangeSet) Drain() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.paths))
	for p := range c.paths {
		out = append(out, p)
	}
	slices.Sort(out)
	clear(c.paths)
	return out
}
