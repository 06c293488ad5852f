package services

import (
	"context"
	"errors"
	"fmt"
)

// Shutdown stops the HTTP server, waits for it to exit and closes the store.
// It keeps going past failures and returns all of them joined.
func (m *Manager) Shutdown(ctx context.Context) error {
	var errs []error

	if m.server != nil {
		if err := m.server.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if m.cancel != nil {
		m.cancel()
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		m.logger.Warn("Timeout waiting for HTTP server to exit")
		errs = append(errs, ctx.Err())
	}

	if m.store != nil {
		if err := m.store.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to close todo store: %w", err))
		}
	}

	return errors.Join(errs...)
}
