package ports

import (
	"context"
	"time"

	"go.trai.ch/tsload/internal/core/domain"
)

// Renderer is the abstraction for output rendering.
// It decouples telemetry collection from presentation logic,
// allowing the same event stream to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and flush output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnCycleStart is called when a bundling cycle begins.
	// changed lists the paths that triggered it, empty for the first cycle.
	OnCycleStart(cycle int, changed []string)

	// OnStepStart is called when a step such as a file transform begins.
	OnStepStart(spanID, parentID, name string, startTime time.Time)

	// OnStepLog is called when a step emits output.
	OnStepLog(spanID string, data []byte)

	// OnStepComplete is called when a step finishes.
	OnStepComplete(spanID string, endTime time.Time, err error)

	// OnReport is called with the outcome of a bundling cycle.
	OnReport(report domain.BuildReport)
}
