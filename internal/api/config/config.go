package config

import (
	"fmt"
	"os"
	"time"
)

type APIConfig struct {
	// RequestTimeout bounds every todo request, including the store round trip.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	HealthTimeout  time.Duration `yaml:"health_timeout"`
}

func DefaultAPIConfig() APIConfig {
	return APIConfig{
		RequestTimeout: 30 * time.Second,
		HealthTimeout:  5 * time.Second,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (a *APIConfig) ApplyDefaults() {
	defaults := DefaultAPIConfig()
	if a.RequestTimeout == 0 {
		a.RequestTimeout = defaults.RequestTimeout
	}
	if a.HealthTimeout == 0 {
		a.HealthTimeout = defaults.HealthTimeout
	}
}

// ApplyEnvOverrides applies environment variable overrides.
func (a *APIConfig) ApplyEnvOverrides() {
	if val := os.Getenv("TODOS_REQUEST_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			a.RequestTimeout = d
		}
	}
}

// ResolvePaths resolves relative paths using the given base directory.
// No paths to resolve in api config.
func (a *APIConfig) ResolvePaths(_ string) { _ = a }

// Validate returns an error if the configuration is invalid.
func (a *APIConfig) Validate() error {
	if a.RequestTimeout < 0 {
		return fmt.Errorf("api.request_timeout must not be negative")
	}
	if a.HealthTimeout < 0 {
		return fmt.Errorf("api.health_timeout must not be negative")
	}
	return nil
}
