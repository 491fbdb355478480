package ports

import "go.trai.ch/livetree/internal/core/domain"

// ConfigLoader defines the interface for loading the optional config file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path. An empty path selects the default location,
	// in which case a missing file yields an empty ConfigFile and no error.
	Load(path string) (domain.ConfigFile, error)
}
