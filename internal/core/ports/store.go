package ports

import "go.trai.ch/tsload/internal/core/domain"

// EmitCache persists emit results across process runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EmitCache interface {
	// Get retrieves the emit output stored under key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.EmitOutput, error)

	// Put stores out under key.
	Put(key string, out domain.EmitOutput) error
}
