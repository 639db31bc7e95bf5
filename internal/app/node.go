package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsload/internal/adapters/config"
	"go.trai.ch/tsload/internal/adapters/fs"
	"go.trai.ch/tsload/internal/adapters/logger"
	"go.trai.ch/tsload/internal/adapters/watcher"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/engine/loader"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles what the command line needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			loader.NodeID,
			fs.FileSystemNodeID,
			watcher.WatcherNodeID,
			watcher.ChangeSetNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[*loader.Factory](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			changes, err := graft.Dep[*watcher.ChangeSet](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(configLoader, factory, fsys, w, changes, log),
				Logger: log,
			}, nil
		},
	})
}
