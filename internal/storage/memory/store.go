// Package memory provides an in-process TodoStore.
//
// Records live in a btree ordered by id, so iteration order is deterministic and ties
// in the requested sort keep ascending id order. Filter semantics match the mongo
// store: exact string equality and case-sensitive substring match.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/google/btree"
	"github.com/syntrixbase/todos/internal/storage/types"
	"github.com/syntrixbase/todos/pkg/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type store struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[*model.Todo]
}

var _ types.TodoStore = (*store)(nil)

func lessByID(a, b *model.Todo) bool {
	return a.ID < b.ID
}

// NewStore creates a store holding copies of todos. Todos without an id get a new
// ObjectID; a later todo with the same id replaces an earlier one.
func NewStore(todos ...*model.Todo) types.TodoStore {
	s := &store{
		tree: btree.NewG[*model.Todo](32, lessByID),
	}
	for _, t := range todos {
		s.insert(t)
	}
	return s
}

func (s *store) insert(t *model.Todo) {
	cp := *t
	if cp.ID == "" {
		cp.ID = primitive.NewObjectID().Hex()
	}
	s.tree.ReplaceOrInsert(&cp)
}

// seedTodo accepts status as either a JSON string or a JSON boolean.
type seedTodo struct {
	ID       string `json:"_id"`
	Body     string `json:"body"`
	Status   any    `json:"status"`
	Owner    string `json:"owner"`
	Category string `json:"category"`
}

// LoadFile creates a store from a JSON array of todos.
func LoadFile(path string) (types.TodoStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []seedTodo
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	todos := make([]*model.Todo, 0, len(seeds))
	for i, sd := range seeds {
		if sd.ID != "" && !model.CheckTodoID(sd.ID) {
			return nil, fmt.Errorf("seed file %s: entry %d has illegal id %q", path, i, sd.ID)
		}
		todo := &model.Todo{
			ID:       sd.ID,
			Body:     sd.Body,
			Owner:    sd.Owner,
			Category: sd.Category,
		}
		if sd.Status != nil {
			todo.Status = fmt.Sprint(sd.Status)
		}
		todos = append(todos, todo)
	}
	return NewStore(todos...), nil
}

func (s *store) Get(ctx context.Context, id string) (*model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.WrapError(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tree.Get(&model.Todo{ID: id})
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *store) Find(ctx context.Context, filters model.Filters, order model.Sort) ([]*model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.WrapError(err)
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	todos := s.match(filters)
	sortTodos(todos, order)
	return todos, nil
}

func (s *store) GroupByCategory(ctx context.Context, order model.Sort) ([]*model.CategoryGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.WrapError(err)
	}

	todos := s.match(nil)
	sortTodos(todos, model.DefaultSort())

	index := make(map[string]*model.CategoryGroup)
	var groups []*model.CategoryGroup
	for _, t := range todos {
		g, ok := index[t.Category]
		if !ok {
			g = &model.CategoryGroup{Category: t.Category}
			index[t.Category] = g
			groups = append(groups, g)
		}
		g.Count++
		g.Todos = append(g.Todos, t)
	}

	less := func(a, b *model.CategoryGroup) bool { return a.Category < b.Category }
	if order.Field == "count" {
		less = func(a, b *model.CategoryGroup) bool { return a.Count < b.Count }
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if order.Descending() {
			return less(groups[j], groups[i])
		}
		return less(groups[i], groups[j])
	})
	return groups, nil
}

func (s *store) Close(_ context.Context) error {
	return nil
}

// match returns copies of the todos satisfying every filter, in id order.
func (s *store) match(filters model.Filters) []*model.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]*model.Todo, 0, s.tree.Len())
	s.tree.Ascend(func(t *model.Todo) bool {
		if matchesAll(t, filters) {
			cp := *t
			todos = append(todos, &cp)
		}
		return true
	})
	return todos
}

func matchesAll(t *model.Todo, filters model.Filters) bool {
	for _, f := range filters {
		if !matches(t, f) {
			return false
		}
	}
	return true
}

func matches(t *model.Todo, f model.Filter) bool {
	value, ok := t.Field(f.Field)
	if !ok {
		return false
	}
	switch f.Op {
	case model.OpEq:
		return value == f.Value
	case model.OpContains:
		return strings.Contains(value, f.Value)
	default:
		return false
	}
}

// sortTodos orders todos in place. Unknown sort fields leave the id order untouched.
func sortTodos(todos []*model.Todo, order model.Sort) {
	if !model.IsTodoField(order.Field) {
		return
	}
	sort.SliceStable(todos, func(i, j int) bool {
		a, _ := todos[i].Field(order.Field)
		b, _ := todos[j].Field(order.Field)
		if order.Descending() {
			return a > b
		}
		return a < b
	})
}
