package loader

import (
	"strconv"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

// host adapts a FileCache to the ports.ServiceHost poll interface.
type host struct {
	cache   *FileCache
	fs      ports.FileSystem
	context string
	project *domain.Project
	options domain.CompilerOptions
	checker []string
}

var _ ports.ServiceHost = (*host)(nil)

// ScriptFileNames lists the declared and requested files. The default library
// is left to the strategy: the esbuild service has none and tsc loads its own.
func (h *host) ScriptFileNames() []string {
	var declared []string
	if h.project != nil {
		declared = h.project.Files
	}
	seen := make(map[string]struct{}, len(declared))
	out := make([]string, 0, len(declared))
	for _, list := range [][]string{declared, h.cache.Paths()} {
		for _, p := range list {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

func (h *host) ScriptVersion(path string) (string, bool) {
	e, ok := h.cache.Get(path)
	if !ok {
		return "", false
	}
	return strconv.Itoa(e.Version), true
}

func (h *host) ScriptSnapshot(inv *domain.Invocation, path string) (domain.Snapshot, bool) {
	info, err := h.fs.Stat(path)
	if err != nil || info.IsDir() {
		h.cache.Evict(path)
		return domain.Snapshot{}, false
	}

	e, ok := h.cache.Get(path)
	if !ok {
		data, err := h.fs.ReadFile(path)
		if err != nil {
			return domain.Snapshot{}, false
		}
		e = h.cache.Update(path, string(data))
	}

	inv.AddDependency(path)

	return domain.Snapshot{Path: path, Version: e.Version, Text: e.Text}, true
}

func (h *host) CompilationSettings() domain.CompilerOptions {
	return h.options
}

func (h *host) CurrentDirectory() string {
	return h.context
}

func (h *host) DefaultLibFileName() string {
	switch h.options.Target {
	case "es3", "es5":
		return "lib.d.ts"
	case "es6":
		return "lib.es2015.d.ts"
	default:
		return "lib." + h.options.Target + ".d.ts"
	}
}

func (h *host) ConfigFilePath() string {
	if h.project == nil {
		return ""
	}
	return h.project.ConfigPath
}

func (h *host) CheckerCommand() []string {
	return h.checker
}
