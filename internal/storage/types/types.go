package types

import (
	"context"

	"github.com/syntrixbase/todos/pkg/model"
)

// TodoStore is the read interface over the todos collection.
//
// Implementations own connection pooling and timeouts. They issue exactly one
// read per call and do not retry; errors are returned unchanged apart from
// model.ErrNotFound for a missing id.
type TodoStore interface {
	// Get retrieves the todo with the given id.
	// id is expected to have passed model.CheckTodoID.
	Get(ctx context.Context, id string) (*model.Todo, error)

	// Find returns every todo matching all filters, ordered by sort.
	// A sort field that is not a Todo attribute leaves the order implementation-defined.
	Find(ctx context.Context, filters model.Filters, sort model.Sort) ([]*model.Todo, error)

	// GroupByCategory returns one group per category, ordered by sort.Field
	// ("category" or "count"). Todos inside a group are ordered by owner.
	GroupByCategory(ctx context.Context, sort model.Sort) ([]*model.CategoryGroup, error)

	// Close releases the underlying resources.
	Close(ctx context.Context) error
}
