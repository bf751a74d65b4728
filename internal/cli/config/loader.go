package config

import (
	"fmt"
	"os"

	"github.com/yndnr/beagle-go/internal/cli/session"
	"github.com/yndnr/beagle-go/internal/infra/confloader"
)

// Load builds the invocation configuration. path points at the YAML
// config file; an empty path selects the default location, and a missing
// file at the default location is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config: file %s does not exist", path)
		}
		path = ""
	}

	cfg := Default()
	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithEnvTransformer(confloader.FlatKeys),
	)
	if err := loader.Load(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.SessionFile == "" {
		cfg.SessionFile = session.DefaultPath()
	}
	return cfg, nil
}
