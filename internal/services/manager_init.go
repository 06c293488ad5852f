package services

import (
	"context"
	"fmt"

	"github.com/syntrixbase/todos/internal/api/rest"
	"github.com/syntrixbase/todos/internal/server"
	"github.com/syntrixbase/todos/internal/todos"
)

func (m *Manager) Init(ctx context.Context) error {
	if err := m.initStore(ctx); err != nil {
		return err
	}

	m.server = server.New(m.cfg.Server, m.logger)

	m.initAPI()
	return nil
}

func (m *Manager) initStore(ctx context.Context) error {
	store, err := newStore(ctx, m.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create todo store: %w", err)
	}
	m.store = store
	m.logger.Info("Todo store ready", "backend", m.cfg.Storage.Backend)
	return nil
}

func (m *Manager) initAPI() {
	svc := todos.NewService(m.store, todos.Options{
		StrictParams: m.cfg.Query.StrictParams,
	}, m.logger)

	handler := rest.NewHandler(svc,
		rest.WithRequestTimeout(m.cfg.API.RequestTimeout),
		rest.WithHealthTimeout(m.cfg.API.HealthTimeout),
	)
	handler.RegisterRoutes(m.server.HTTPMux())
}
