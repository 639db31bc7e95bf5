package esbuild_test

import (
	"strconv"

	"go.trai.ch/tsload/internal/core/domain"
)

// memHost serves files from memory. Every write bumps the file's version.
type memHost struct {
	files    map[string]domain.FileEntry
	order    []string
	options  domain.CompilerOptions
	requests []string
}

func newMemHost(options domain.CompilerOptions) *memHost {
	return &memHost{files: map[string]domain.FileEntry{}, options: options}
}

func (h *memHost) write(path, text string) {
	e, ok := h.files[path]
	if !ok {
		h.order = append(h.order, path)
	}
	h.files[path] = domain.FileEntry{Version: e.Version + 1, Text: text}
}

func (h *memHost) ScriptFileNames() []string { return h.order }

func (h *memHost) ScriptVersion(path string) (string, bool) {
	e, ok := h.files[path]
	return strconv.Itoa(e.Version), ok
}

func (h *memHost) ScriptSnapshot(inv *domain.Invocation, path string) (domain.Snapshot, bool) {
	h.requests = append(h.requests, path)
	e, ok := h.files[path]
	if !ok {
		return domain.Snapshot{}, false
	}
	inv.AddDependency(path)
	return domain.Snapshot{Path: path, Version: e.Version, Text: e.Text}, true
}

func (h *memHost) CompilationSettings() domain.CompilerOptions { return h.options }
func (h *memHost) CurrentDirectory() string                    { return "/project" }
func (h *memHost) DefaultLibFileName() string                  { return "lib.es2015.d.ts" }
func (h *memHost) ConfigFilePath() string                      { return "" }
func (h *memHost) CheckerCommand() []string                    { return nil }
