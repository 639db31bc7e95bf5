package loader

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
)

// TransformResult is the outcome of compiling one file.
type TransformResult struct {
	Code         string
	SourceMap    *domain.SourceMap
	Dependencies []string
	// Errors holds the syntactic diagnostics of the compiled file.
	Errors []domain.Report
}

// Instance owns one compiler service and the file cache feeding it.
// All operations are serialized, so at most one invocation is active at a time.
type Instance struct {
	key      domain.InstanceKey
	ignore   []int
	logger   ports.Logger
	compiler ports.Compiler

	mu      sync.Mutex
	cache   *FileCache
	host    *host
	service ports.LanguageService
	configs []domain.Diagnostic
}

// Key returns the instance key.
func (i *Instance) Key() domain.InstanceKey {
	return i.key
}

// Context returns the build context directory.
func (i *Instance) Context() string {
	return i.key.Context
}

// ConfigDiagnostics returns the configuration problems found while creating the instance.
func (i *Instance) ConfigDiagnostics() []domain.Diagnostic {
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.configs)
}

// Files returns the files known to the instance: declared project files
// followed by every requested path.
func (i *Instance) Files() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.host.ScriptFileNames()
}

// Version returns the cached version of path.
func (i *Instance) Version(path string) (int, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	e, ok := i.cache.Get(path)
	return e.Version, ok
}

// ensureService builds the compiler service if a previous attempt failed.
// Callers must hold i.mu, except during construction.
func (i *Instance) ensureService() error {
	if i.service != nil {
		return nil
	}
	if i.compiler == nil {
		return zerr.With(zerr.Wrap(domain.ErrServiceUnavailable, "no compiler strategy"), "instance", i.key.ID())
	}
	svc, err := i.compiler.NewService(i.host)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServiceUnavailable.Error()), "compiler", i.compiler.Name())
	}
	i.service = svc
	return nil
}

// Transform stores content as the new version of path and compiles it.
// When the service skips emit the error wraps domain.ErrEmitSkipped and the
// returned result still carries the file's syntactic errors.
func (i *Instance) Transform(ctx context.Context, path, content string) (*TransformResult, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.ensureService(); err != nil {
		return nil, err
	}

	i.cache.Update(path, content)

	inv := domain.NewInvocation(path)
	out, err := i.service.EmitOutput(ctx, inv, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "emit failed"), "file", path)
	}

	res := &TransformResult{Dependencies: inv.Dependencies()}
	for _, d := range i.service.SyntacticDiagnostics(path) {
		res.Errors = append(res.Errors, domain.NewReport(i.key.Context, d))
	}

	js, ok := out.JavaScript()
	if out.EmitSkipped || !ok {
		return res, zerr.With(zerr.Wrap(domain.ErrEmitSkipped, path), "file", path)
	}
	res.Code = js.Text

	if i.key.SourceMap {
		if m, ok := out.Map(); ok {
			var sm domain.SourceMap
			if err := json.Unmarshal([]byte(m.Text), &sm); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "invalid source map"), "file", path)
			}
			sm.Rebase(path, content)
			res.SourceMap = &sm
		}
	}

	return res, nil
}

// RefreshChanged re-reads every cached definition file in paths and bumps its
// version. Files that can no longer be read are evicted. It returns the number
// of refreshed entries.
func (i *Instance) RefreshChanged(paths []string) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	refreshed := 0
	for _, path := range paths {
		if !domain.IsDefinition(path) {
			continue
		}
		if _, ok := i.cache.Get(path); !ok {
			continue
		}
		data, err := i.host.fs.ReadFile(path)
		if err != nil {
			i.cache.Evict(path)
			continue
		}
		i.cache.Update(path, string(data))
		refreshed++
	}
	return refreshed
}

// CollectDiagnostics gathers whole-program diagnostics. Global and semantic
// diagnostics become warnings; syntactic and configuration diagnostics become
// errors. Codes in the ignore list are dropped.
func (i *Instance) CollectDiagnostics(ctx context.Context) (warnings, errors []domain.Report, err error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, d := range domain.FilterCodes(i.configs, i.ignore) {
		errors = append(errors, domain.NewReport(i.key.Context, d))
	}

	if err := i.ensureService(); err != nil {
		return nil, errors, err
	}

	program, err := i.service.Program(ctx)
	if err != nil {
		return nil, errors, zerr.Wrap(err, "failed to collect diagnostics")
	}

	for _, group := range [][]domain.Diagnostic{program.Global, program.Semantic} {
		for _, d := range domain.FilterCodes(group, i.ignore) {
			warnings = append(warnings, domain.NewReport(i.key.Context, d))
		}
	}
	for _, d := range domain.FilterCodes(program.Syntactic, i.ignore) {
		errors = append(errors, domain.NewReport(i.key.Context, d))
	}

	return warnings, errors, nil
}

// UpdateFile stores content for path without compiling it and returns the new version.
func (i *Instance) UpdateFile(path, content string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.cache.Update(path, content).Version
}

// FileDiagnostics returns the syntactic and semantic diagnostics of one file,
// without ignore-listed codes.
func (i *Instance) FileDiagnostics(path string) ([]domain.Diagnostic, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.ensureService(); err != nil {
		return nil, err
	}

	diags := slices.Concat(
		i.service.SyntacticDiagnostics(path),
		i.service.SemanticDiagnostics(path),
	)
	return domain.FilterCodes(diags, i.ignore), nil
}
