package model

import (
	"context"
	"errors"
	"strings"
)

// Messages returned to clients for single-record lookups. Clients match them
// verbatim, including the "Mongo" wording on every backend.
const (
	MsgMalformedTodoID = "The requested Todo id wasn't a legal Mongo Object ID."
	MsgTodoNotFound    = "The requested Todo was not found."
)

var (
	// ErrNotFound is returned by a store when no record has the requested id
	ErrNotFound = errors.New("document not found")
	// ErrMalformedID is returned when a todo id is not a legal store identifier.
	ErrMalformedID = errors.New(MsgMalformedTodoID)
	// ErrTodoNotFound is returned when a well-formed todo id has no record.
	ErrTodoNotFound = errors.New(MsgTodoNotFound)
	// ErrInvalidQuery is returned when strict query parsing rejects a parameter
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidFilter is returned by a store handed a filter it cannot evaluate
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrCanceled is returned when the operation is canceled by the client
	ErrCanceled = errors.New("operation canceled")
)

// WrapError wraps storage errors to model errors.
// It converts context.Canceled and context.DeadlineExceeded to ErrCanceled.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if IsCanceled(err) {
		return ErrCanceled
	}
	return err
}

// IsCanceled returns true if the error is due to context cancellation or deadline exceeded.
// It checks both direct context errors and wrapped errors (e.g., from MongoDB driver).
func IsCanceled(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, ErrCanceled) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "context canceled") || strings.Contains(errStr, "context deadline exceeded")
}
