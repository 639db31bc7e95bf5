// Package compiler assembles the compiler strategies selectable by name.
package compiler

import (
	"go.trai.ch/tsload/internal/adapters/compiler/esbuild"
	"go.trai.ch/tsload/internal/adapters/compiler/tsc"
	"go.trai.ch/tsload/internal/core/ports"
)

// NewCatalog returns the built-in strategies: esbuild, and tsc layered on it.
func NewCatalog(
	cache ports.EmitCache,
	hasher ports.Hasher,
	executor ports.Executor,
	logger ports.Logger,
) ports.CompilerCatalog {
	emitter := esbuild.New(cache, hasher, logger)
	return ports.CompilerCatalog{
		emitter,
		tsc.New(emitter, executor, logger),
	}
}
