package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
)

// listen binds the configured address and builds the http.Server around the
// wrapped mux. It runs under s.mu so Stop never sees a half-built server.
func (s *serverImpl) listen() (net.Listener, error) {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.HTTPPort))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("http server error: %w", err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:      s.wrapMiddleware(s.httpMux),
		ReadTimeout:  s.cfg.HTTPReadTimeout,
		WriteTimeout: s.cfg.HTTPWriteTimeout,
		IdleTimeout:  s.cfg.HTTPIdleTimeout,
	}
	return ln, nil
}

func (s *serverImpl) serve(ln net.Listener, errChan chan<- error) {
	s.logger.Info("Serving todo API", "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChan <- fmt.Errorf("http server error: %w", err)
	}
}
