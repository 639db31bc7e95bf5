package ports

import (
	"context"
	"io"

	"go.trai.ch/tsload/internal/core/domain"
)

// Executor runs external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd and streams its output to stdout and stderr.
	// It returns an error if the command cannot start or exits non-zero.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
