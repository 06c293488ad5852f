package storage

import (
	"github.com/syntrixbase/todos/internal/storage/types"
)

type TodoStore = types.TodoStore
