package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAPIConfig(t *testing.T) {
	cfg := DefaultAPIConfig()

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.HealthTimeout)
}

func TestAPIConfig_ApplyDefaults(t *testing.T) {
	cfg := APIConfig{RequestTimeout: time.Second}
	cfg.ApplyDefaults()

	assert.Equal(t, time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.HealthTimeout)
}

func TestAPIConfig_ApplyEnvOverrides(t *testing.T) {
	t.Setenv("TODOS_REQUEST_TIMEOUT", "2s")
	cfg := DefaultAPIConfig()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)

	t.Setenv("TODOS_REQUEST_TIMEOUT", "soon")
	cfg = DefaultAPIConfig()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestAPIConfig_Validate(t *testing.T) {
	cfg := DefaultAPIConfig()
	assert.NoError(t, cfg.Validate())

	cfg.RequestTimeout = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = DefaultAPIConfig()
	cfg.HealthTimeout = -time.Second
	assert.Error(t, cfg.Validate())
}
