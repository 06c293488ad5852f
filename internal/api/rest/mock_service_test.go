package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stretchr/testify/mock"
	"github.com/syntrixbase/todos/pkg/model"
)

// MockTodoService is a mock implementation of TodoService
type MockTodoService struct {
	mock.Mock
}

func (m *MockTodoService) List(ctx context.Context, params url.Values) ([]*model.Todo, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Todo), args.Error(1)
}

func (m *MockTodoService) Resolve(ctx context.Context, rawID string) (*model.Todo, error) {
	args := m.Called(ctx, rawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Todo), args.Error(1)
}

func (m *MockTodoService) ByCategory(ctx context.Context, params url.Values) ([]*model.CategoryGroup, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CategoryGroup), args.Error(1)
}

func createTestServer(svc TodoService, opts ...HandlerOption) http.Handler {
	mux := http.NewServeMux()
	NewHandler(svc, opts...).RegisterRoutes(mux)
	return mux
}
