package ports

import "go.rok.dev/rok/internal/core/domain"

// ProjectLoader reads a project manifest from a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the manifest from the given working directory.
	Load(cwd string) (*domain.Project, error)
}
