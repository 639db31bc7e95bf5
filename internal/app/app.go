// Package app implements the application layer for tsload.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tsload/internal/adapters/bundler"
	"go.trai.ch/tsload/internal/adapters/detector"
	"go.trai.ch/tsload/internal/adapters/linear"
	"go.trai.ch/tsload/internal/adapters/lsp"
	"go.trai.ch/tsload/internal/adapters/telemetry"
	"go.trai.ch/tsload/internal/adapters/tui"
	"go.trai.ch/tsload/internal/adapters/watcher"
	"go.trai.ch/tsload/internal/build"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/tsload/internal/engine/loader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultOutdir is the output directory used when neither outfile nor outdir is set.
const DefaultOutdir = "dist"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	factory      *loader.Factory
	fs           ports.FileSystem
	watcher      ports.Watcher
	changes      *watcher.ChangeSet
	logger       ports.Logger
	stdout       io.Writer
	stderr       io.Writer
	workDir      string
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	factory *loader.Factory,
	fsys ports.FileSystem,
	w ports.Watcher,
	changes *watcher.ChangeSet,
	log ports.Logger,
) *App {
	return &App{
		configLoader: configLoader,
		factory:      factory,
		fs:           fsys,
		watcher:      w,
		changes:      changes,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects the linear renderer.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWorkDir sets the directory the configuration is searched from.
// The process working directory is used when unset.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// BuildOptions configuration for the Build method. Non-zero fields override
// the values read from tsload.yaml. Relative paths are resolved against the
// working directory.
type BuildOptions struct {
	EntryPoints    []string
	Outfile        string
	Outdir         string
	Sourcemap      bool
	Compiler       string
	ConfigFile     string
	IgnoreWarnings []int
	Watch          bool
	OutputMode     string
}

// Build bundles the configured entry points once, or on every change when
// opts.Watch is set.
//
//nolint:cyclop // orchestration function
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	// 1. Load the configuration
	cfg, err := a.loadConfig(overrides{
		entryPoints:    opts.EntryPoints,
		outfile:        opts.Outfile,
		outdir:         opts.Outdir,
		sourcemap:      opts.Sourcemap,
		compiler:       opts.Compiler,
		configFile:     opts.ConfigFile,
		ignoreWarnings: opts.IgnoreWarnings,
	})
	if err != nil {
		return err
	}

	// 2. Validate entry points
	if len(cfg.EntryPoints) == 0 {
		return domain.ErrNoEntryPoints
	}

	// 3. Initialize Renderer
	renderer := a.newRenderer(ctx, opts)

	// 4. Initialize Telemetry
	shutdown := telemetry.Install(telemetry.NewBridge(renderer))
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()
	tracer := telemetry.NewOTelTracer("tsload").WithRenderer(renderer)

	// 5. Initialize the bundler plugin
	plugin := bundler.New(a.factory.NewRegistry(), bundler.Options{
		Settings: settingsFor(cfg),
		Changes:  a.changes,
		Tracer:   tracer,
		Logger:   a.logger,
		FS:       a.fs,
	})
	buildOpts, err := esbuildOptions(cfg, plugin.API())
	if err != nil {
		return err
	}

	// 6. Run Renderer and Builds concurrently
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// Renderer Routine
	g.Go(func() error {
		// Leaving the dashboard ends a watch session.
		defer cancel()
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		if err := renderer.Wait(); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	})

	// Build Routine
	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()

		if opts.Watch {
			return a.watch(ctx, cfg, buildOpts, renderer)
		}

		report := a.cycle(renderer, cfg, 1, nil, func() api.BuildResult {
			return api.Build(buildOpts)
		})
		if report.Failed() {
			return errors.Join(domain.ErrBuildFailed, reportsError(report.Errors))
		}
		return nil
	})

	return g.Wait()
}

// watch runs the first build and then one rebuild per debounced batch of
// changes until ctx is done.
func (a *App) watch(ctx context.Context, cfg *domain.Config, opts api.BuildOptions, renderer ports.Renderer) error {
	bctx, ctxErr := api.Context(opts)
	if ctxErr != nil {
		return errors.Join(domain.ErrBuildFailed, reportsError(bundler.Reports(ctxErr.Errors)))
	}
	defer bctx.Dispose()

	a.cycle(renderer, cfg, 1, nil, bctx.Rebuild)

	if err := a.watcher.Start(ctx, cfg.Root); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	batches := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(cfg.Debounce, func(paths []string) {
		a.changes.Add(paths...)
		// A pending batch drains these paths too.
		select {
		case batches <- paths:
		default:
		}
	})

	ignored := outputFilter(opts)
	go func() {
		for event := range a.watcher.Events() {
			if ignored(event.Path) {
				continue
			}
			debouncer.Add(event.Path)
		}
	}()

	for n := 2; ; n++ {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			a.cycle(renderer, cfg, n, relativePaths(cfg.Root, paths), bctx.Rebuild)
		}
	}
}

// cycle runs one build, writes its outputs and hands the report to renderer.
func (a *App) cycle(
	renderer ports.Renderer,
	cfg *domain.Config,
	n int,
	changed []string,
	run func() api.BuildResult,
) domain.BuildReport {
	renderer.OnCycleStart(n, changed)
	start := time.Now()

	result := run()
	report := domain.BuildReport{
		Errors:   bundler.Reports(result.Errors),
		Warnings: bundler.Reports(result.Warnings),
	}
	if len(result.Errors) == 0 {
		outputs, err := writeOutputs(result.OutputFiles)
		if err != nil {
			report.Errors = append(report.Errors, domain.Report{Message: err.Error()})
		}
		for _, out := range outputs {
			report.Outputs = append(report.Outputs, domain.ModuleRequest(cfg.Root, out))
		}
	}
	report.Duration = time.Since(start)

	renderer.OnReport(report)
	return report
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	Files          []string
	Compiler       string
	ConfigFile     string
	IgnoreWarnings []int
}

// Check type-checks the project files and the entry points without bundling.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	cfg, err := a.loadConfig(overrides{
		entryPoints:    opts.Files,
		compiler:       opts.Compiler,
		configFile:     opts.ConfigFile,
		ignoreWarnings: opts.IgnoreWarnings,
	})
	if err != nil {
		return err
	}

	settings := settingsFor(cfg)
	settings.Context = cfg.Root
	inst := a.factory.NewRegistry().Instance(settings)

	renderer := linear.NewRenderer(a.stdout, a.stderr)
	defer func() {
		_ = renderer.Stop()
	}()

	start := time.Now()
	var readErrs []domain.Report
	for _, path := range cfg.EntryPoints {
		data, err := a.fs.ReadFile(path)
		if err != nil {
			readErrs = append(readErrs, domain.Report{
				Message: fmt.Sprintf("cannot read %s", domain.ModuleRequest(cfg.Root, path)),
			})
			continue
		}
		inst.UpdateFile(path, string(data))
	}

	warnings, errs, err := inst.CollectDiagnostics(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to check project")
	}

	report := domain.BuildReport{
		Errors:   append(readErrs, errs...),
		Warnings: warnings,
		Duration: time.Since(start),
	}
	renderer.OnReport(report)

	if report.Failed() {
		return errors.Join(domain.ErrBuildFailed, reportsError(report.Errors))
	}
	return nil
}

// Clean removes the emit cache.
func (a *App) Clean(_ context.Context) error {
	root, err := a.root()
	if err != nil {
		return err
	}

	path := filepath.Join(root, domain.DefaultStorePath())
	a.logger.Info("removing emit cache...")
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove emit cache"), "path", path)
	}
	a.logger.Info("removed emit cache")
	return nil
}

// LSPOptions configuration for the ServeLSP method.
type LSPOptions struct {
	Compiler   string
	ConfigFile string
}

// ServeLSP runs a language server over stdio until the client disconnects.
func (a *App) ServeLSP(_ context.Context, opts LSPOptions) error {
	cfg, err := a.loadConfig(overrides{compiler: opts.Compiler, configFile: opts.ConfigFile})
	if err != nil {
		return err
	}

	settings := settingsFor(cfg)
	settings.Context = cfg.Root
	server := lsp.New(a.factory.NewRegistry(), settings, a.fs, a.logger, build.Version)
	return server.RunStdio()
}

func (a *App) newRenderer(ctx context.Context, opts BuildOptions) ports.Renderer {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	if opts.Watch && mode == detector.ModeTUI {
		model := tui.NewModel(a.stderr)
		teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		return tui.NewRenderer(&model, teaOpts...)
	}
	return linear.NewRenderer(a.stdout, a.stderr)
}

func (a *App) cwd() (string, error) {
	if a.workDir != "" {
		return a.workDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	return cwd, nil
}

func (a *App) root() (string, error) {
	cwd, err := a.cwd()
	if err != nil {
		return "", err
	}
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}
	return cfg.Root, nil
}

type overrides struct {
	entryPoints    []string
	outfile        string
	outdir         string
	sourcemap      bool
	compiler       string
	configFile     string
	ignoreWarnings []int
}

// loadConfig reads tsload.yaml and layers the command line on top. Paths from
// the file are resolved against the config root, paths from the command line
// against the working directory.
func (a *App) loadConfig(o overrides) (*domain.Config, error) {
	cwd, err := a.cwd()
	if err != nil {
		return nil, err
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	cfg.EntryPoints = absolutize(cfg.Root, cfg.EntryPoints)
	cfg.Outfile = absPath(cfg.Root, cfg.Outfile)
	cfg.Outdir = absPath(cfg.Root, cfg.Outdir)

	if len(o.entryPoints) > 0 {
		cfg.EntryPoints = absolutize(cwd, o.entryPoints)
	}
	if o.outfile != "" {
		cfg.Outfile = absPath(cwd, o.outfile)
		cfg.Outdir = ""
	}
	if o.outdir != "" {
		cfg.Outdir = absPath(cwd, o.outdir)
		cfg.Outfile = ""
	}
	if o.sourcemap {
		cfg.Sourcemap = true
	}
	if o.compiler != "" {
		cfg.Compiler = o.compiler
	}
	if o.configFile != "" {
		cfg.ConfigFile = o.configFile
	}
	if len(o.ignoreWarnings) > 0 {
		cfg.IgnoreWarnings = append(cfg.IgnoreWarnings, o.ignoreWarnings...)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = domain.DefaultDebounce
	}

	return cfg, nil
}

func settingsFor(cfg *domain.Config) loader.Settings {
	return loader.Settings{
		Compiler:        cfg.Compiler,
		ConfigFile:      cfg.ConfigFile,
		IgnoreWarnings:  cfg.IgnoreWarnings,
		CompilerOptions: cfg.CompilerOptions,
		Checker:         cfg.Checker,
	}
}

var platforms = map[string]api.Platform{
	"browser": api.PlatformBrowser,
	"node":    api.PlatformNode,
	"neutral": api.PlatformNeutral,
}

var formats = map[string]api.Format{
	"iife": api.FormatIIFE,
	"cjs":  api.FormatCommonJS,
	"esm":  api.FormatESModule,
}

// esbuildOptions maps the configuration to esbuild build options. Outputs are
// returned in memory and written by the app.
func esbuildOptions(cfg *domain.Config, plugin api.Plugin) (api.BuildOptions, error) {
	opts := api.BuildOptions{
		EntryPoints:   cfg.EntryPoints,
		AbsWorkingDir: cfg.Root,
		Bundle:        cfg.Bundle,
		External:      cfg.External,
		Write:         false,
		LogLevel:      api.LogLevelSilent,
		Plugins:       []api.Plugin{plugin},
	}

	if cfg.Platform != "" {
		platform, ok := platforms[cfg.Platform]
		if !ok {
			return api.BuildOptions{}, zerr.With(zerr.Wrap(domain.ErrInvalidBuildOption, "platform"), "platform", cfg.Platform)
		}
		opts.Platform = platform
	}
	if cfg.Format != "" {
		format, ok := formats[cfg.Format]
		if !ok {
			return api.BuildOptions{}, zerr.With(zerr.Wrap(domain.ErrInvalidBuildOption, "format"), "format", cfg.Format)
		}
		opts.Format = format
	}

	switch {
	case cfg.Outfile != "":
		opts.Outfile = cfg.Outfile
	case cfg.Outdir != "":
		opts.Outdir = cfg.Outdir
	default:
		opts.Outdir = filepath.Join(cfg.Root, DefaultOutdir)
	}

	if cfg.Sourcemap {
		opts.Sourcemap = api.SourceMapLinked
	}

	return opts, nil
}

// outputFilter reports whether a watch event concerns a build output.
func outputFilter(opts api.BuildOptions) func(path string) bool {
	return func(path string) bool {
		if opts.Outfile != "" {
			return path == opts.Outfile || path == opts.Outfile+".map"
		}
		return path == opts.Outdir || strings.HasPrefix(path, opts.Outdir+string(filepath.Separator))
	}
}

func writeOutputs(files []api.OutputFile) ([]string, error) {
	paths := make([]string, 0, len(files))
	var errs error
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.Path), domain.DirPerm); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", f.Path))
			continue
		}
		if err := os.WriteFile(f.Path, f.Contents, domain.FilePerm); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to write output"), "path", f.Path))
			continue
		}
		paths = append(paths, f.Path)
	}
	return paths, errs
}

func reportsError(reports []domain.Report) error {
	errs := make([]error, 0, len(reports))
	for _, r := range reports {
		errs = append(errs, r)
	}
	return errors.Join(errs...)
}

func absolutize(dir string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, absPath(dir, p))
	}
	return out
}

func absPath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func relativePaths(root string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if rel, err := filepath.Rel(root, p); err == nil {
			p = rel
		}
		out = append(out, filepath.ToSlash(p))
	}
	return out
}
