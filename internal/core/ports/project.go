package ports

import "go.trai.ch/tsload/internal/core/domain"

// ProjectResolver locates and parses project configuration files.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectResolver interface {
	// Resolve loads configFile relative to dir, or the nearest tsconfig.json
	// above dir when configFile is empty. It returns nil, nil when no project
	// configuration exists.
	Resolve(dir, configFile string) (*domain.Project, error)
}
