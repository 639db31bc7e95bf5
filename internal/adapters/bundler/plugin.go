// Package bundler connects loader instances to esbuild through its plugin API.
package bundler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/engine/loader" //nolint:depguard // The plugin drives loader instances
)

// PluginName is the name esbuild reports for messages from this plugin.
const PluginName = "tsload"

// Filter selects the files the plugin loads.
const Filter = `\.(ts|tsx|mts|cts)$`

// Options configures a Plugin.
type Options struct {
	// Settings are the loader options. Context and SourceMap are taken from
	// the build options.
	Settings loader.Settings
	// Changes feeds the paths modified since the previous build. Optional.
	Changes ports.ChangeFeed
	Tracer  ports.Tracer
	Logger  ports.Logger
	FS      ports.FileSystem
}

// Plugin compiles TypeScript sources for esbuild.
type Plugin struct {
	registry *loader.Registry
	opts     Options

	mu    sync.Mutex
	inst  *loader.Instance
	ctx   context.Context
	cycle ports.Span
}

// New creates a Plugin drawing instances from registry.
func New(registry *loader.Registry, opts Options) *Plugin {
	return &Plugin{registry: registry, opts: opts, ctx: context.Background()}
}

// Instance returns the instance serving the plugin, or nil before the first build.
func (p *Plugin) Instance() *loader.Instance {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inst
}

// API returns the esbuild plugin.
func (p *Plugin) API() api.Plugin {
	return api.Plugin{
		Name:  PluginName,
		Setup: p.setup,
	}
}

func (p *Plugin) setup(build api.PluginBuild) {
	settings := p.opts.Settings
	settings.Context = build.InitialOptions.AbsWorkingDir
	if settings.Context == "" {
		if cwd, err := os.Getwd(); err == nil {
			settings.Context = cwd
		}
	}
	settings.SourceMap = build.InitialOptions.Sourcemap != api.SourceMapNone

	build.OnStart(func() (api.OnStartResult, error) {
		p.start(settings)
		return api.OnStartResult{}, nil
	})

	build.OnLoad(api.OnLoadOptions{Filter: Filter}, p.load)

	build.OnEnd(func(result *api.BuildResult) (api.OnEndResult, error) {
		p.end(result)
		return api.OnEndResult{}, nil
	})
}

// start resolves the instance, refreshes changed definition files and opens
// the cycle span.
func (p *Plugin) start(settings loader.Settings) {
	inst := p.registry.Instance(settings)

	if p.opts.Changes != nil {
		changed := p.opts.Changes.Drain()
		if n := inst.RefreshChanged(changed); n > 0 {
			p.opts.Logger.Info(fmt.Sprintf("refreshed %d definition file(s)", n))
		}
	}

	ctx, span := p.opts.Tracer.Start(context.Background(), "bundle",
		ports.WithAttribute("instance", inst.Key().ID()),
	)

	p.mu.Lock()
	p.inst = inst
	p.ctx = ctx
	p.cycle = span
	p.mu.Unlock()
}

func (p *Plugin) current() (*loader.Instance, context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inst, p.ctx
}

func (p *Plugin) load(args api.OnLoadArgs) (api.OnLoadResult, error) {
	if domain.IsDefinition(args.Path) {
		empty := ""
		return api.OnLoadResult{Contents: &empty, Loader: api.LoaderJS}, nil
	}

	inst, ctx := p.current()
	if inst == nil {
		return api.OnLoadResult{}, errors.New("loader instance not initialized")
	}

	ctx, span := p.opts.Tracer.Start(ctx, "transform "+domain.ModuleRequest(inst.Context(), args.Path),
		ports.WithAttribute("file", args.Path),
	)
	defer span.End()

	data, err := p.opts.FS.ReadFile(args.Path)
	if err != nil {
		span.RecordError(err)
		return api.OnLoadResult{
			Errors: []api.Message{{Text: fmt.Sprintf("%s: File not found", args.Path)}},
		}, nil
	}

	res, err := inst.Transform(ctx, args.Path, string(data))
	if err != nil {
		span.RecordError(err)
		return api.OnLoadResult{
			Errors:     failureMessages(args.Path, res, err),
			WatchFiles: dependencies(res),
		}, nil
	}

	contents := res.Code
	if res.SourceMap != nil {
		encoded, err := json.Marshal(res.SourceMap)
		if err == nil {
			contents += "\n//# sourceMappingURL=data:application/json;base64," +
				base64.StdEncoding.EncodeToString(encoded)
		}
	}
	span.SetAttribute("dependencies", len(res.Dependencies))

	return api.OnLoadResult{
		Contents:   &contents,
		Loader:     api.LoaderJS,
		ResolveDir: filepath.Dir(args.Path),
		WatchFiles: res.Dependencies,
		Errors:     Messages(res.Errors),
	}, nil
}

// failureMessages reports a failed transform: the file's syntax errors when
// there are any, otherwise the failure itself.
func failureMessages(path string, res *loader.TransformResult, err error) []api.Message {
	if res != nil && len(res.Errors) > 0 {
		return Messages(res.Errors)
	}
	if errors.Is(err, domain.ErrEmitSkipped) {
		return []api.Message{{Text: fmt.Sprintf("%s: File not found", path)}}
	}
	return []api.Message{{Text: err.Error()}}
}

func dependencies(res *loader.TransformResult) []string {
	if res == nil {
		return nil
	}
	return res.Dependencies
}

// end appends whole-program diagnostics to the build result and closes the cycle span.
func (p *Plugin) end(result *api.BuildResult) {
	p.mu.Lock()
	inst, ctx, span := p.inst, p.ctx, p.cycle
	p.cycle = nil
	p.mu.Unlock()

	if inst == nil {
		return
	}

	warnings, errs, err := inst.CollectDiagnostics(ctx)
	if err != nil {
		p.opts.Logger.Error(err)
		result.Errors = append(result.Errors, api.Message{PluginName: PluginName, Text: err.Error()})
	}
	result.Errors = append(result.Errors, Messages(errs)...)
	result.Warnings = append(result.Warnings, Messages(warnings)...)

	if span != nil {
		span.SetAttribute("errors", len(result.Errors))
		span.SetAttribute("warnings", len(result.Warnings))
		span.End()
	}
}
