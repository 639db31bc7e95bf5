package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsload/internal/adapters/fs"
	"go.trai.ch/tsload/internal/adapters/logger"
	"go.trai.ch/tsload/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the tool config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// ResolverNodeID is the unique identifier for the project resolver Graft node.
	ResolverNodeID graft.ID = "adapter.project_resolver"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fsys, log), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID},
		Run: func(ctx context.Context) (ports.ProjectResolver, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(fsys), nil
		},
	})
}
