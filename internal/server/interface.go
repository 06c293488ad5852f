package server

import (
	"context"
	"net/http"
)

// Service is the interface for the network layer.
type Service interface {
	// Start binds the HTTP listener and serves until a fatal error occurs or
	// the context is canceled. A bind failure is returned immediately.
	Start(ctx context.Context) error

	// Stop initiates a graceful shutdown.
	// It waits for active connections to drain or for the context to expire.
	Stop(ctx context.Context) error

	// HTTPMux returns the underlying HTTP ServeMux for direct route registration.
	// This must be called BEFORE Start().
	HTTPMux() *http.ServeMux
}
