package config

import (
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/tsload/internal/adapters/fs"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectResolver = (*Resolver)(nil)

// Resolver implements ports.ProjectResolver for tsconfig.json files.
type Resolver struct {
	fs ports.FileSystem
}

// NewResolver creates a Resolver reading through fsys.
func NewResolver(fsys ports.FileSystem) *Resolver {
	return &Resolver{fs: fsys}
}

// resolvedConfig is a tsconfig with its extends chain applied.
// File lists hold absolute, slash separated paths and patterns.
type resolvedConfig struct {
	options map[string]any
	files   []string
	include []string
	exclude []string
}

// Resolve loads configFile relative to dir, or the nearest tsconfig.json at or above dir.
func (r *Resolver) Resolve(dir, configFile string) (*domain.Project, error) {
	var configPath string
	if configFile != "" {
		configPath = configFile
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(dir, configPath)
		}
		if _, err := r.fs.Stat(configPath); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrProjectConfigNotFound, configPath), "path", configPath)
		}
	} else {
		found, ok := findUp(r.fs, dir, domain.ProjectFileName)
		if !ok {
			return nil, nil
		}
		configPath = found
	}

	cfg, err := r.load(configPath, nil)
	if err != nil {
		return nil, err
	}

	projectDir := filepath.Dir(configPath)
	files, err := r.collectFiles(projectDir, cfg)
	if err != nil {
		return nil, err
	}

	return &domain.Project{
		ConfigPath: configPath,
		Dir:        projectDir,
		Files:      files,
		Options:    cfg.options,
	}, nil
}

// load reads configPath and applies its extends chain. chain holds the
// configs currently being loaded, for cycle detection.
func (r *Resolver) load(configPath string, chain []string) (*resolvedConfig, error) {
	if slices.Contains(chain, configPath) {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrProjectConfigCycle, configPath),
			"chain", strings.Join(append(chain, configPath), " -> "),
		)
	}
	chain = append(chain, configPath)

	data, err := r.fs.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectConfigReadFailed.Error()), "path", configPath)
	}

	std, err := standardizeJSONC(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectConfigParseFailed.Error()), "path", configPath)
	}
	var file tsconfigFile
	if err := json.Unmarshal(std, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectConfigParseFailed.Error()), "path", configPath)
	}

	dir := filepath.Dir(configPath)
	cfg := &resolvedConfig{options: map[string]any{}}

	for _, parent := range extendsList(file.Extends) {
		parentPath := r.resolveExtends(dir, parent)
		base, err := r.load(parentPath, chain)
		if err != nil {
			return nil, err
		}
		cfg.options = domain.MergeOptions(cfg.options, base.options)
		if base.files != nil {
			cfg.files = base.files
		}
		if base.include != nil {
			cfg.include = base.include
		}
		if base.exclude != nil {
			cfg.exclude = base.exclude
		}
	}

	cfg.options = domain.MergeOptions(cfg.options, file.CompilerOptions)
	if file.Files != nil {
		cfg.files = absolutize(dir, file.Files)
	}
	if file.Include != nil {
		cfg.include = absolutize(dir, file.Include)
	}
	if file.Exclude != nil {
		cfg.exclude = absolutize(dir, file.Exclude)
	}

	return cfg, nil
}

// extendsList accepts the string and array forms of "extends".
func extendsList(v any) []string {
	switch ext := v.(type) {
	case string:
		return []string{ext}
	case []any:
		out := make([]string, 0, len(ext))
		for _, e := range ext {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// resolveExtends maps an extends entry to a config path. Relative and absolute
// entries name files; anything else is looked up in node_modules.
func (r *Resolver) resolveExtends(dir, ref string) string {
	if filepath.IsAbs(ref) || strings.HasPrefix(ref, ".") {
		p := ref
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, ref)
		}
		if !strings.HasSuffix(p, ".json") {
			if _, err := r.fs.Stat(p); err != nil {
				p += ".json"
			}
		}
		return p
	}

	current := dir
	for {
		candidate := filepath.Join(current, "node_modules", filepath.FromSlash(ref))
		if info, err := r.fs.Stat(candidate); err == nil {
			if info.IsDir() {
				return filepath.Join(candidate, domain.ProjectFileName)
			}
			return candidate
		}
		if _, err := r.fs.Stat(candidate + ".json"); err == nil {
			return candidate + ".json"
		}
		parent := filepath.Dir(current)
		if parent == current {
			return filepath.Join(dir, "node_modules", filepath.FromSlash(ref))
		}
		current = parent
	}
}

// collectFiles lists the explicit files followed by the sorted files matched
// by include and not matched by exclude.
func (r *Resolver) collectFiles(projectDir string, cfg *resolvedConfig) ([]string, error) {
	include := cfg.include
	if include == nil && cfg.files == nil {
		include = []string{filepath.ToSlash(projectDir) + "/**/*"}
	}
	exclude := cfg.exclude
	if exclude == nil {
		exclude = []string{filepath.ToSlash(projectDir) + "/node_modules"}
		if outDir, ok := cfg.options["outDir"].(string); ok && outDir != "" {
			exclude = append(exclude, absolutize(projectDir, []string{outDir})...)
		}
	}

	for _, p := range slices.Concat(include, exclude) {
		if err := validatePattern(p); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidIncludePattern, err.Error()), "pattern", p)
		}
	}

	var files []string
	seen := map[string]struct{}{}
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, f := range cfg.files {
		add(filepath.FromSlash(f))
	}

	if len(include) == 0 {
		return files, nil
	}

	var matched []string
	for file := range fs.WalkFiles(r.fs, projectDir) {
		if !domain.IsSource(file) {
			continue
		}
		slashed := filepath.ToSlash(file)
		if matchesAny(include, slashed) && !excluded(exclude, slashed) {
			matched = append(matched, file)
		}
	}
	slices.Sort(matched)
	for _, f := range matched {
		add(f)
	}

	return files, nil
}

func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := matchGlob(expandDirPattern(p), name); ok {
			return true
		}
	}
	return false
}

// excluded reports whether name matches an exclude pattern or lies below an
// excluded directory.
func excluded(patterns []string, name string) bool {
	for _, p := range patterns {
		if !hasGlobMeta(p) && (name == p || strings.HasPrefix(name, strings.TrimSuffix(p, "/")+"/")) {
			return true
		}
		if ok, _ := matchGlob(p, name); ok {
			return true
		}
		if ok, _ := matchGlob(p+"/**/*", name); ok {
			return true
		}
	}
	return false
}

func absolutize(dir string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		out[i] = filepath.ToSlash(filepath.Clean(p))
	}
	return out
}
