// Package todos answers list, lookup and grouping requests against a TodoStore.
package todos

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/syntrixbase/todos/internal/query"
	"github.com/syntrixbase/todos/internal/storage"
	"github.com/syntrixbase/todos/pkg/model"
)

// Options controls request translation.
type Options struct {
	// StrictParams rejects unknown sortBy/sortOrder values with model.ErrInvalidQuery.
	StrictParams bool
}

// Service is stateless apart from its store handle and safe for concurrent use.
type Service struct {
	store  storage.TodoStore
	opts   Options
	logger *slog.Logger
}

// NewService creates a service over store.
func NewService(store storage.TodoStore, opts Options, logger *slog.Logger) *Service {
	if store == nil {
		panic("todo store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		opts:   opts,
		logger: logger.With("component", "todos"),
	}
}

// List returns the todos selected by the query parameters, issuing one store query.
func (s *Service) List(ctx context.Context, params url.Values) ([]*model.Todo, error) {
	filters, sort, err := s.build(params)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "Listing todos", "filters", len(filters), "sort_by", sort.Field, "sort_order", sort.Direction)
	return s.store.Find(ctx, filters, sort)
}

// Resolve looks up one todo by its raw identifier.
//
// A malformed identifier yields model.ErrMalformedID without touching the store. A
// well-formed identifier with no record yields model.ErrTodoNotFound. Any other store
// error is returned unchanged.
func (s *Service) Resolve(ctx context.Context, rawID string) (*model.Todo, error) {
	if !model.CheckTodoID(rawID) {
		return nil, model.ErrMalformedID
	}

	todo, err := s.store.Get(ctx, rawID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}

// ByCategory returns todos grouped by category. sortBy selects "category" (default)
// or "count"; any other value falls back to category. sortOrder follows List.
func (s *Service) ByCategory(ctx context.Context, params url.Values) ([]*model.CategoryGroup, error) {
	if !s.opts.StrictParams {
		return s.store.GroupByCategory(ctx, query.GroupSort(params))
	}

	sort, err := query.GroupSortStrict(params)
	if err != nil {
		return nil, err
	}
	return s.store.GroupByCategory(ctx, sort)
}

func (s *Service) build(params url.Values) (model.Filters, model.Sort, error) {
	if s.opts.StrictParams {
		return query.BuildStrict(params)
	}
	filters, sort := query.Build(params)
	return filters, sort, nil
}
