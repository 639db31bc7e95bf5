package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsload/internal/adapters/compiler" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsload/internal/adapters/config"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsload/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsload/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tsload/internal/core/ports"
)

// NodeID is the unique identifier for the registry factory Graft node.
const NodeID graft.ID = "engine.loader"

// Factory creates a fresh Registry for every build.
type Factory struct {
	catalog  ports.CompilerCatalog
	resolver ports.ProjectResolver
	fs       ports.FileSystem
	logger   ports.Logger
}

// NewFactory creates a Factory with the given dependencies.
func NewFactory(
	catalog ports.CompilerCatalog,
	resolver ports.ProjectResolver,
	fs ports.FileSystem,
	logger ports.Logger,
) *Factory {
	return &Factory{catalog: catalog, resolver: resolver, fs: fs, logger: logger}
}

// NewRegistry returns an empty registry sharing the factory's dependencies.
func (f *Factory) NewRegistry() *Registry {
	return NewRegistry(f.catalog, f.resolver, f.fs, f.logger)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			compiler.CatalogNodeID,
			config.ResolverNodeID,
			fs.FileSystemNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			catalog, err := graft.Dep[ports.CompilerCatalog](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ProjectResolver](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(catalog, resolver, fsys, log), nil
		},
	})
}
