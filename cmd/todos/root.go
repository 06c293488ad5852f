package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/syntrixbase/todos/internal/config"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "todos",
	Short: "Read-only query service over the todos collection",
	Long: `todos exposes the todos collection over HTTP.

Routes:
  GET /api/todos              list todos, filtered and sorted by query parameters
  GET /api/todos/{id}         fetch one todo by its 24-character hex id
  GET /api/todosByCategory    todos grouped by category
  GET /health                 liveness probe`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", config.DefaultConfigDir, "directory holding config.yml and config.local.yml")
}
