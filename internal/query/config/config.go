// Package config provides configuration for query-parameter translation.
package config

import (
	"os"
	"strconv"
)

// Config holds the query translation configuration.
type Config struct {
	// StrictParams rejects unknown sort fields and sort orders instead of
	// falling back to the defaults. Off by default.
	StrictParams bool `yaml:"strict_params"`
}

// DefaultConfig returns the default query configuration.
func DefaultConfig() Config {
	return Config{}
}

// ApplyDefaults fills in zero values with defaults.
// Nothing to fill: the zero value is the default.
func (c *Config) ApplyDefaults() { _ = c }

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if val := os.Getenv("TODOS_QUERY_STRICT"); val != "" {
		if strict, err := strconv.ParseBool(val); err == nil {
			c.StrictParams = strict
		}
	}
}

// ResolvePaths resolves relative paths using the given base directory.
// No paths to resolve in query config.
func (c *Config) ResolvePaths(_ string) { _ = c }

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	return nil
}
