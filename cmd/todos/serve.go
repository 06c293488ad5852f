package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/syntrixbase/todos/internal/config"
	"github.com/syntrixbase/todos/internal/logging"
	"github.com/syntrixbase/todos/internal/services"
)

const initTimeout = 30 * time.Second

var serveFlags struct {
	port int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server with the configuration found in --config-dir.

Environment overrides such as MONGO_URI, DB_NAME and TODOS_HTTP_PORT are
applied after the config files.

Examples:
  # Mongo on localhost, port 8080
  todos serve

  # In-memory store seeded from a file
  STORAGE_BACKEND=memory todos serve --port 4567`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&serveFlags.port, "port", "p", 0, "override server.http_port")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.HTTPPort = serveFlags.port
		if err := cfg.Server.Validate(); err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer func() {
		if err := logging.Shutdown(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	mgr := services.NewManager(cfg, slog.Default())

	initCtx, cancel := context.WithTimeout(cmd.Context(), initTimeout)
	defer cancel()
	if err := mgr.Init(initCtx); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mgr.Start(ctx); err != nil {
		return err
	}
	slog.Info("Todos service started", "host", cfg.Server.Host, "port", cfg.Server.HTTPPort)

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutting down")
	case runErr = <-mgr.Errors():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := mgr.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown finished with errors", "error", err)
	}

	return runErr
}
