package model

import (
	"regexp"
)

// Todo field names as stored and as accepted by sortBy.
const (
	FieldID       = "_id"
	FieldBody     = "body"
	FieldStatus   = "status"
	FieldOwner    = "owner"
	FieldCategory = "category"
)

var (
	todoIDRegex = regexp.MustCompile(`^[0-9a-f]{24}$`)
)

// CheckTodoID reports whether id is a legal store identifier: 24 lowercase hex characters.
func CheckTodoID(id string) bool {
	return todoIDRegex.MatchString(id)
}

// IsTodoField reports whether name is an attribute of Todo.
func IsTodoField(name string) bool {
	switch name {
	case FieldID, "id", FieldBody, FieldStatus, FieldOwner, FieldCategory:
		return true
	}
	return false
}

// Todo is a single todo record.
//
// Status holds the stored string form ("true"/"false") and is never coerced.
type Todo struct {
	ID       string `json:"_id"`
	Body     string `json:"body,omitempty"`
	Status   string `json:"status,omitempty"`
	Owner    string `json:"owner"`
	Category string `json:"category"`
}

// Equal reports whether t and other identify the same record.
func (t *Todo) Equal(other *Todo) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.ID == other.ID
}

// Field returns the value of the named attribute. ok is false for unknown names.
func (t *Todo) Field(name string) (value string, ok bool) {
	switch name {
	case FieldID, "id":
		return t.ID, true
	case FieldBody:
		return t.Body, true
	case FieldStatus:
		return t.Status, true
	case FieldOwner:
		return t.Owner, true
	case FieldCategory:
		return t.Category, true
	}
	return "", false
}

// CategoryGroup is the set of todos sharing one category.
type CategoryGroup struct {
	Category string  `json:"_id"`
	Count    int     `json:"count"`
	Todos    []*Todo `json:"todos"`
}
