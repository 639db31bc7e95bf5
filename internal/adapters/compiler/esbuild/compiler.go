// Package esbuild implements the default compiler strategy on esbuild's
// transform API.
package esbuild

import (
	"go.trai.ch/tsload/internal/core/ports"
)

// Name is the strategy name.
const Name = "esbuild"

var _ ports.Compiler = (*Compiler)(nil)

// Compiler creates esbuild language services. cache and hasher are optional;
// when both are set, emitted output is persisted across runs.
type Compiler struct {
	cache  ports.EmitCache
	hasher ports.Hasher
	logger ports.Logger
}

// New creates a Compiler.
func New(cache ports.EmitCache, hasher ports.Hasher, logger ports.Logger) *Compiler {
	return &Compiler{cache: cache, hasher: hasher, logger: logger}
}

// Name returns the strategy name.
func (c *Compiler) Name() string {
	return Name
}

// NewService creates a service reading files from host.
func (c *Compiler) NewService(host ports.ServiceHost) (ports.LanguageService, error) {
	options := host.CompilationSettings()
	return &Service{
		host:     host,
		compiler: c,
		options:  options,
		global:   optionDiagnostics(options),
		results:  make(map[string]*fileResult),
	}, nil
}
