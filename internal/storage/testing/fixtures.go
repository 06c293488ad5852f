// Package testing provides fixtures and a mock TodoStore for tests.
package testing

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/syntrixbase/todos/internal/storage/types"
	"github.com/syntrixbase/todos/pkg/model"
)

// Fixture ids. Sam's id is fixed so lookups can target it.
const (
	BlanchesID = "5d3f4a1b2c3d4e5f60718291"
	FrysID     = "5d3f4a1b2c3d4e5f60718292"
	DawnsID    = "5d3f4a1b2c3d4e5f60718293"
	SamsID     = "5d3f4a1b2c3d4e5f60718294"

	// MissingID is well-formed but never present in the fixtures.
	MissingID = "588935f5c668650dc77df581"
)

// Fixtures returns the four reference todos, freshly allocated on every call.
func Fixtures() []*model.Todo {
	return []*model.Todo{
		{ID: BlanchesID, Owner: "Blanche", Category: "homework", Status: "true"},
		{ID: FrysID, Owner: "Fry", Category: "video games", Status: "false"},
		{ID: DawnsID, Owner: "Dawn", Category: "homework", Status: "true", Body: "do 3601 homework"},
		{ID: SamsID, Owner: "Sam", Category: "homework", Status: "true"},
	}
}

// Owners returns the owners of todos in order.
func Owners(todos []*model.Todo) []string {
	owners := make([]string, 0, len(todos))
	for _, t := range todos {
		owners = append(owners, t.Owner)
	}
	return owners
}

// MockTodoStore is a testify mock of types.TodoStore.
type MockTodoStore struct {
	mock.Mock
}

var _ types.TodoStore = (*MockTodoStore)(nil)

func (m *MockTodoStore) Get(ctx context.Context, id string) (*model.Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Todo), args.Error(1)
}

func (m *MockTodoStore) Find(ctx context.Context, filters model.Filters, sort model.Sort) ([]*model.Todo, error) {
	args := m.Called(ctx, filters, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Todo), args.Error(1)
}

func (m *MockTodoStore) GroupByCategory(ctx context.Context, sort model.Sort) ([]*model.CategoryGroup, error) {
	args := m.Called(ctx, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CategoryGroup), args.Error(1)
}

func (m *MockTodoStore) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
