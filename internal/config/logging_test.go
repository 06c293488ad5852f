package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestDefaultLoggingConfig(t *testing.T) {
	cfg := DefaultLoggingConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "logs", cfg.Dir)
	assert.Equal(t, 100, cfg.Rotation.MaxSize)
	assert.Equal(t, 10, cfg.Rotation.MaxBackups)
	assert.Equal(t, 30, cfg.Rotation.MaxAge)
	assert.True(t, cfg.Rotation.Compress)
	assert.True(t, cfg.Console.Enabled)
	assert.False(t, cfg.File.Enabled)
}

func TestLoggingConfigYAMLParsing(t *testing.T) {
	yamlData := `
level: "debug"
format: "json"
dir: "/var/log/todos"
rotation:
  max_size: 50
  max_backups: 5
  max_age: 14
  compress: false
console:
  enabled: false
file:
  enabled: true
  format: "json"
`

	var cfg LoggingConfig
	err := yaml.Unmarshal([]byte(yamlData), &cfg)

	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "/var/log/todos", cfg.Dir)
	assert.Equal(t, 50, cfg.Rotation.MaxSize)
	assert.False(t, cfg.Console.Enabled)
	assert.True(t, cfg.File.Enabled)
}

func TestLoggingConfigApplyDefaults(t *testing.T) {
	cfg := &LoggingConfig{Level: "warn", Console: ConsoleConfig{Format: "json"}}
	cfg.ApplyDefaults()

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "logs", cfg.Dir)
	assert.Equal(t, 100, cfg.Rotation.MaxSize)
	assert.Equal(t, "warn", cfg.Console.Level)
	assert.Equal(t, "json", cfg.Console.Format)
	assert.Equal(t, "warn", cfg.File.Level)
	assert.Equal(t, "text", cfg.File.Format)
}

func TestLoggingConfigApplyEnvOverrides(t *testing.T) {
	t.Setenv("TODOS_LOG_LEVEL", "Debug")
	cfg := DefaultLoggingConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "debug", cfg.Console.Level)
	assert.Equal(t, "debug", cfg.File.Level)
}

func TestLoggingConfigResolvePaths(t *testing.T) {
	tests := []struct {
		name      string
		dir       string
		configDir string
		want      string
	}{
		{"relative next to config", "logs", filepath.Join("app", "config"), filepath.Join("app", "logs")},
		{"parent relative", "../logs", filepath.Join("app", "config"), "logs"},
		{"absolute untouched", "/var/log/todos", "config", "/var/log/todos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoggingConfig{Dir: tt.dir}
			cfg.ResolvePaths(tt.configDir)
			assert.Equal(t, tt.want, cfg.Dir)
		})
	}
}

func TestLoggingConfigValidate(t *testing.T) {
	valid := DefaultLoggingConfig()
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(*LoggingConfig)
	}{
		{"level", func(c *LoggingConfig) { c.Level = "trace" }},
		{"format", func(c *LoggingConfig) { c.Format = "xml" }},
		{"console level", func(c *LoggingConfig) { c.Console.Level = "loud" }},
		{"console format", func(c *LoggingConfig) { c.Console.Format = "yaml" }},
		{"file level", func(c *LoggingConfig) { c.File.Enabled = true; c.File.Level = "loud" }},
		{"file format", func(c *LoggingConfig) { c.File.Enabled = true; c.File.Format = "yaml" }},
		{"file dir", func(c *LoggingConfig) { c.File.Enabled = true; c.Dir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLoggingConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	// Disabled outputs are not checked.
	cfg := DefaultLoggingConfig()
	cfg.File.Format = "yaml"
	assert.NoError(t, cfg.Validate())
}
