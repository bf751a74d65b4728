package config

import (
	"os"
	"path/filepath"
)

// Config is the configuration for one beagle-cli invocation.
type Config struct {
	// Endpoint is the backend base URL.
	Endpoint string `koanf:"endpoint"`

	// User and Pw are pre-supplied credentials that bypass interactive
	// prompting during re-authentication.
	User string `koanf:"user"`
	Pw   string `koanf:"pw"`

	// SessionFile is the session record location.
	SessionFile string `koanf:"session_file"`

	// CABundle is an optional PEM file with extra trust roots for HTTPS.
	CABundle string `koanf:"ca_bundle"`

	// Insecure disables TLS certificate verification.
	Insecure bool `koanf:"insecure"`

	// Output selects the result rendering: json or yaml.
	Output string `koanf:"output"`
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".beagle", "config.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Endpoint: "http://localhost:5001",
		Output:   "json",
	}
}

// HasCredentials reports whether both fallback credentials are present.
func (c *Config) HasCredentials() bool {
	return c.User != "" && c.Pw != ""
}
