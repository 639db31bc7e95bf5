package ports

import (
	"context"
	"iter"
)

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp classifies a file system notification.
type WatchOp uint8

// Notification kinds reported by a Watcher.
const (
	OpCreate WatchOp = iota
	OpWrite
	OpRemove
	OpRename
)

// WatchEvent is one notification under the watched root. Path is absolute.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher reports changes below a project root while a watch build runs.
type Watcher interface {
	// Start subscribes to root and every directory below it.
	Start(ctx context.Context, root string) error
	// Stop releases the subscription. Events ends after Stop.
	Stop() error
	// Events yields notifications until the watcher stops.
	Events() iter.Seq[WatchEvent]
}

// ChangeFeed hands out the paths modified since the previous drain.
type ChangeFeed interface {
	// Drain returns the pending paths and clears them.
	Drain() []string
}
