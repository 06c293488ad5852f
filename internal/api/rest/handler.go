package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/syntrixbase/todos/internal/query"
	"github.com/syntrixbase/todos/internal/server"
	"github.com/syntrixbase/todos/pkg/model"
)

// TodoService is the read side the handler serves from.
type TodoService interface {
	List(ctx context.Context, params url.Values) ([]*model.Todo, error)
	Resolve(ctx context.Context, rawID string) (*model.Todo, error)
	ByCategory(ctx context.Context, params url.Values) ([]*model.CategoryGroup, error)
}

type Handler struct {
	todos          TodoService
	requestTimeout time.Duration
	healthTimeout  time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRequestTimeout overrides DefaultRequestTimeout for todo routes.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.requestTimeout = d
		}
	}
}

// WithHealthTimeout overrides DefaultHealthTimeout for the health route.
func WithHealthTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.healthTimeout = d
		}
	}
}

func NewHandler(todos TodoService, opts ...HandlerOption) *Handler {
	if todos == nil {
		panic("todo service cannot be nil")
	}

	h := &Handler{
		todos:          todos,
		requestTimeout: DefaultRequestTimeout,
		healthTimeout:  DefaultHealthTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Default request timeouts
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultHealthTimeout  = 5 * time.Second
)

// StatusClientClosedRequest is the nginx convention for a client that went away.
const StatusClientClosedRequest = 499

// APIError represents a structured error response
type APIError struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Errors  []query.ValidationError `json:"errors,omitempty"`
}

// Error codes
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// writeError writes a structured JSON error response
func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeAPIError(w, status, APIError{Code: code, Message: message})
}

func writeAPIError(w http.ResponseWriter, status int, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		slog.Warn("Failed to encode error response", "error", err)
	}
}

// writeInternalError writes an internal error response, but first checks if the error
// is due to client cancellation (returns 499 instead of 500).
func writeInternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if model.IsCanceled(err) {
		w.WriteHeader(StatusClientClosedRequest)
		return
	}
	slog.Error(message, "error", err, "request_id", server.GetRequestID(r.Context()))
	writeError(w, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// writeLookupError maps the outcome of a single-todo lookup to a response.
func writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrMalformedID):
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, model.MsgMalformedTodoID)
	case errors.Is(err, model.ErrTodoNotFound):
		writeError(w, http.StatusNotFound, ErrCodeNotFound, model.MsgTodoNotFound)
	default:
		writeInternalError(w, r, err, "Failed to get todo")
	}
}

// writeQueryError maps a list or grouping failure to a response.
func writeQueryError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, model.ErrInvalidQuery) {
		apiErr := APIError{Code: ErrCodeBadRequest, Message: "Invalid query parameters"}
		var ve query.ValidationErrors
		if errors.As(err, &ve) {
			apiErr.Errors = ve.Errors
		}
		writeAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	writeInternalError(w, r, err, message)
}

// writeJSON writes a JSON response with proper error handling
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("Failed to encode JSON response", "error", err)
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Request ID, panic recovery and metrics are handled by the server middleware
	todoTimeout := server.TimeoutMiddleware(h.requestTimeout)
	mux.Handle("GET /api/todos", todoTimeout(http.HandlerFunc(h.handleListTodos)))
	mux.Handle("GET /api/todos/{id}", todoTimeout(http.HandlerFunc(h.handleGetTodo)))
	mux.Handle("GET /api/todosByCategory", todoTimeout(http.HandlerFunc(h.handleTodosByCategory)))

	mux.Handle("GET /health", server.TimeoutMiddleware(h.healthTimeout)(http.HandlerFunc(h.handleHealth)))
}
