// Package services wires the todo store, query service and HTTP server
// into one process and owns their lifecycle.
package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/syntrixbase/todos/internal/config"
	"github.com/syntrixbase/todos/internal/server"
	"github.com/syntrixbase/todos/internal/storage"
)

// Dependency injection for testing
var newStore = storage.NewStore

type Manager struct {
	cfg    *config.Config
	logger *slog.Logger

	store  storage.TodoStore
	server server.Service

	cancel context.CancelFunc
	errCh  chan error
	wg     sync.WaitGroup
}

func NewManager(cfg *config.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		cfg:    cfg,
		logger: logger,
		errCh:  make(chan error, 1),
	}
}

// Server returns the HTTP server built by Init, or nil before Init.
func (m *Manager) Server() server.Service {
	return m.server
}

// Errors reports a fatal server error after Start.
func (m *Manager) Errors() <-chan error {
	return m.errCh
}
