package ports

import "go.trai.ch/ship/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration for the given working directory and resolves it.
	Load(cwd string) (*domain.Project, error)
}
