package ports

import "go.trai.ch/snapsync/internal/core/domain"

// ConfigLoader defines the interface for loading the snapsync configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers snapsync.yaml by walking up from cwd and returns the resolved config.
	// Defaults are returned when no file is found.
	Load(cwd string) (*domain.Config, error)

	// LoadFile reads the config from an explicit path.
	LoadFile(path string) (*domain.Config, error)
}
