// Package loader keeps one incremental compiler service per loader configuration
// and adapts it to per-file bundler calls.
package loader

import (
	"fmt"
	"sync"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

// Registry caches compilation instances by key.
type Registry struct {
	catalog  ports.CompilerCatalog
	resolver ports.ProjectResolver
	fs       ports.FileSystem
	logger   ports.Logger

	mu        sync.Mutex
	instances map[domain.InstanceKey]*Instance
}

// NewRegistry creates an empty registry.
func NewRegistry(
	catalog ports.CompilerCatalog,
	resolver ports.ProjectResolver,
	fs ports.FileSystem,
	logger ports.Logger,
) *Registry {
	return &Registry{
		catalog:   catalog,
		resolver:  resolver,
		fs:        fs,
		logger:    logger,
		instances: make(map[domain.InstanceKey]*Instance),
	}
}

// Instance returns the instance for settings, creating it on first use.
// Creation never fails: configuration problems are stored on the instance
// and reported through ConfigDiagnostics.
func (r *Registry) Instance(settings Settings) *Instance {
	key := settings.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if inst, ok := r.instances[key]; ok {
		return inst
	}

	inst := r.newInstance(key, settings)
	r.instances[key] = inst
	return inst
}

// Lookup returns an existing instance without creating one.
func (r *Registry) Lookup(key domain.InstanceKey) (*Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.instances[key]
	return inst, ok
}

// Len returns the number of instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

func (r *Registry) newInstance(key domain.InstanceKey, settings Settings) *Instance {
	var diags []domain.Diagnostic

	project, err := r.resolver.Resolve(settings.Context, settings.ConfigFile)
	if err != nil {
		diags = append(diags, domain.Diagnostic{
			Category: domain.Global,
			Message:  err.Error(),
			Code:     domain.CodeCannotReadConfig,
		})
		project = nil
	}

	var projectOptions map[string]any
	if project != nil {
		projectOptions = project.Options
	}
	raw := domain.MergeOptions(
		domain.DefaultOptions(),
		projectOptions,
		settings.CompilerOptions,
		map[string]any{"sourceMap": settings.SourceMap},
	)
	options, optionDiags := domain.ParseCompilerOptions(raw)
	diags = append(diags, optionDiags...)

	name := settings.CompilerName()
	compiler, ok := r.catalog.Lookup(name)
	if !ok {
		diags = append(diags, domain.Diagnostic{
			Category: domain.Global,
			Message:  fmt.Sprintf("Cannot find compiler '%s'.", name),
			Code:     domain.CodeCannotFindModule,
		})
		compiler, _ = r.catalog.Lookup(DefaultCompiler)
	}

	inst := &Instance{
		key:     key,
		ignore:  settings.IgnoreWarnings,
		cache:   NewFileCache(),
		logger:  r.logger,
		configs: diags,
	}
	inst.compiler = compiler
	inst.host = &host{
		cache:   inst.cache,
		fs:      r.fs,
		context: settings.Context,
		project: project,
		options: options,
		checker: settings.Checker,
	}

	for _, d := range diags {
		r.logger.Warn(d.Format())
	}

	if err := inst.ensureService(); err != nil {
		inst.configs = append(inst.configs, domain.Diagnostic{
			Category: domain.Global,
			Message:  err.Error(),
		})
		r.logger.Error(err)
	}

	r.logger.Info(fmt.Sprintf("compiler instance %s ready (%s) for %s", key.ID(), name, settings.Context))

	return inst
}
