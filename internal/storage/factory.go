package storage

import (
	"context"
	"fmt"

	"github.com/syntrixbase/todos/internal/storage/config"
	"github.com/syntrixbase/todos/internal/storage/memory"
	"github.com/syntrixbase/todos/internal/storage/mongo"
)

// Dependency injection for testing
var newMongoStore = func(ctx context.Context, cfg config.MongoConfig) (TodoStore, error) {
	return mongo.NewStore(ctx, cfg)
}

// NewStore creates the todo store selected by cfg.Backend.
func NewStore(ctx context.Context, cfg config.Config) (TodoStore, error) {
	switch cfg.Backend {
	case config.BackendMongo:
		s, err := newMongoStore(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo store: %w", err)
		}
		return s, nil
	case config.BackendMemory:
		if cfg.Memory.SeedFile == "" {
			return memory.NewStore(), nil
		}
		s, err := memory.LoadFile(cfg.Memory.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize memory store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Backend)
	}
}
