package ports

import "go.trai.ch/tsload/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd to the nearest tsload.yaml and parses it.
	// It returns the default configuration rooted at cwd when none is found.
	Load(cwd string) (*domain.Config, error)
}
