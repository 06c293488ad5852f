package rest

import (
	"net/http"

	"github.com/syntrixbase/todos/pkg/model"
)

func (h *Handler) handleListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todos.List(r.Context(), r.URL.Query())
	if err != nil {
		writeQueryError(w, r, err, "Failed to list todos")
		return
	}

	if todos == nil {
		todos = []*model.Todo{}
	}
	writeJSON(w, http.StatusOK, todos)
}

func (h *Handler) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	todo, err := h.todos.Resolve(r.Context(), r.PathValue("id"))
	if err != nil {
		writeLookupError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

func (h *Handler) handleTodosByCategory(w http.ResponseWriter, r *http.Request) {
	groups, err := h.todos.ByCategory(r.Context(), r.URL.Query())
	if err != nil {
		writeQueryError(w, r, err, "Failed to group todos")
		return
	}

	if groups == nil {
		groups = []*model.CategoryGroup{}
	}
	writeJSON(w, http.StatusOK, groups)
}
