package ports

import "go.trai.ch/serv/internal/core/domain"

// ConfigLoader loads the server configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	// A missing configuration file is not an error; defaults apply.
	Load(cwd string) (*domain.Config, error)
}
