package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, BackendMongo, cfg.Backend)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "dev", cfg.Mongo.DatabaseName)
	assert.Equal(t, "todos", cfg.Mongo.Collection)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestConfig_ApplyDefaults_CustomValuesPreserved(t *testing.T) {
	cfg := &Config{
		Backend: BackendMemory,
		Mongo:   MongoConfig{Collection: "items"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, "items", cfg.Mongo.Collection)
	assert.Equal(t, "dev", cfg.Mongo.DatabaseName)
}

func TestConfig_ApplyEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("DB_NAME", "prod")
	t.Setenv("STORAGE_BACKEND", "memory")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
	assert.Equal(t, "prod", cfg.Mongo.DatabaseName)
	assert.Equal(t, BackendMemory, cfg.Backend)
}

func TestConfig_ApplyEnvOverrides_MongoAddr(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_ADDR", "db.internal")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "mongodb://db.internal", cfg.Mongo.URI)
}

func TestConfig_ResolvePaths(t *testing.T) {
	cfg := Config{Memory: MemoryConfig{SeedFile: "data/todos.json"}}
	cfg.ResolvePaths("config")
	assert.Equal(t, filepath.Join("config", "data", "todos.json"), cfg.Memory.SeedFile)

	abs := filepath.Join(string(filepath.Separator), "srv", "todos.json")
	cfg = Config{Memory: MemoryConfig{SeedFile: abs}}
	cfg.ResolvePaths("config")
	assert.Equal(t, abs, cfg.Memory.SeedFile)

	cfg = Config{}
	cfg.ResolvePaths("config")
	assert.Empty(t, cfg.Memory.SeedFile)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid mongo", func(c *Config) {}, ""},
		{"valid memory", func(c *Config) { c.Backend = BackendMemory; c.Mongo = MongoConfig{} }, ""},
		{"unknown backend", func(c *Config) { c.Backend = "postgres" }, "unsupported storage backend"},
		{"missing uri", func(c *Config) { c.Mongo.URI = "" }, "storage.mongo.uri"},
		{"missing database", func(c *Config) { c.Mongo.DatabaseName = "" }, "storage.mongo.database_name"},
		{"missing collection", func(c *Config) { c.Mongo.Collection = "" }, "storage.mongo.collection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
