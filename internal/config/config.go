package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	api "github.com/syntrixbase/todos/internal/api/config"
	query "github.com/syntrixbase/todos/internal/query/config"
	"github.com/syntrixbase/todos/internal/server"
	storage "github.com/syntrixbase/todos/internal/storage/config"
	"gopkg.in/yaml.v3"
)

// DefaultConfigDir is where LoadConfig looks when no directory is given.
const DefaultConfigDir = "config"

// Config holds the application configuration
type Config struct {
	Server server.Config `yaml:"server"`
	API    api.APIConfig `yaml:"api"`

	// Components
	Query   query.Config   `yaml:"query"`
	Storage storage.Config `yaml:"storage"`
	Logging LoggingConfig  `yaml:"logging"`
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		Server:  server.DefaultConfig(),
		API:     api.DefaultAPIConfig(),
		Query:   query.DefaultConfig(),
		Storage: storage.DefaultConfig(),
		Logging: DefaultLoggingConfig(),
	}
}

// LoadConfig loads configuration from files and environment variables
// Order: defaults -> config.yml -> config.local.yml -> ApplyDefaults -> ApplyEnvOverrides -> ResolvePaths -> Validate
func LoadConfig(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir
	}

	// 1. Start with default values (so YAML can override them, including bool fields)
	cfg := Default()

	// 2. Load config.yml (overrides defaults)
	loadFile(filepath.Join(configDir, "config.yml"), cfg)

	// 3. Load config.local.yml (overrides config.yml)
	loadFile(filepath.Join(configDir, "config.local.yml"), cfg)

	// 4. Apply configuration lifecycle
	if err := ApplyServiceConfigs(configDir,
		&cfg.Server,
		&cfg.API,
		&cfg.Query,
		&cfg.Storage,
		&cfg.Logging,
	); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// loadFile merges filename into cfg. A missing file is skipped; an unreadable
// or malformed one is reported and skipped, leaving cfg as it was.
func loadFile(filename string, cfg *Config) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		log.Printf("Warning: Error reading %s: %v", filename, err)
		return
	}

	// Decode into a copy so a parse error cannot leave cfg half-updated.
	next := *cfg
	if err := yaml.Unmarshal(data, &next); err != nil {
		log.Printf("Warning: Error parsing %s: %v", filename, err)
		return
	}
	*cfg = next
}
