package services

import (
	"context"
	"errors"
)

// Start runs the HTTP server in the background until Shutdown or until
// bgCtx is cancelled. A listen failure is delivered on Errors.
func (m *Manager) Start(bgCtx context.Context) error {
	if m.server == nil {
		return errors.New("manager not initialized")
	}

	ctx, cancel := context.WithCancel(bgCtx)
	m.cancel = cancel

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.server.Start(ctx); err != nil {
			m.logger.Error("HTTP server stopped with error", "error", err)
			select {
			case m.errCh <- err:
			default:
			}
		}
	}()
	return nil
}
