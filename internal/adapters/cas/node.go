package cas

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsload/internal/adapters/config"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

// NodeID is the unique identifier for the emit cache Graft node.
const NodeID graft.ID = "adapter.emit_cache"

func init() {
	graft.Register(graft.Node[ports.EmitCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.EmitCache, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			root := cwd
			// A broken config is reported by the command that loads it.
			if cfg, loadErr := loader.Load(cwd); loadErr == nil {
				root = cfg.Root
			}
			return NewStore(filepath.Join(root, domain.DefaultStorePath())), nil
		},
	})
}
