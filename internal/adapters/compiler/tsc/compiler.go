// Package tsc implements a compiler strategy that emits through esbuild and
// type checks by running the TypeScript compiler as an external process.
package tsc

import (
	"go.trai.ch/tsload/internal/core/ports"
)

// Name is the strategy name.
const Name = "tsc"

// DefaultCommand is the checker command line used when none is configured.
var DefaultCommand = []string{"tsc"}

var _ ports.Compiler = (*Compiler)(nil)

// Compiler wraps an emitting strategy with an external type checker.
type Compiler struct {
	emitter  ports.Compiler
	executor ports.Executor
	logger   ports.Logger
}

// New creates a Compiler. Output comes from emitter; semantic diagnostics
// come from the checker process run through executor.
func New(emitter ports.Compiler, executor ports.Executor, logger ports.Logger) *Compiler {
	return &Compiler{emitter: emitter, executor: executor, logger: logger}
}

// Name returns the strategy name.
func (c *Compiler) Name() string {
	return Name
}

// NewService creates a service for host.
func (c *Compiler) NewService(host ports.ServiceHost) (ports.LanguageService, error) {
	inner, err := c.emitter.NewService(host)
	if err != nil {
		return nil, err
	}
	return &Service{
		LanguageService: inner,
		host:            host,
		executor:        c.executor,
		logger:          c.logger,
	}, nil
}
