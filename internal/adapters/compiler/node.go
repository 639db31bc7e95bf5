package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsload/internal/adapters/cas"
	"go.trai.ch/tsload/internal/adapters/fs"
	"go.trai.ch/tsload/internal/adapters/logger"
	"go.trai.ch/tsload/internal/adapters/shell"
	"go.trai.ch/tsload/internal/core/ports"
)

// CatalogNodeID is the unique identifier for the compiler catalog Graft node.
const CatalogNodeID graft.ID = "adapter.compiler_catalog"

func init() {
	graft.Register(graft.Node[ports.CompilerCatalog]{
		ID:        CatalogNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, fs.HasherNodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CompilerCatalog, error) {
			cache, err := graft.Dep[ports.EmitCache](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCatalog(cache, hasher, executor, log), nil
		},
	})
}
