package model

import "fmt"

// FilterOp defines the supported filter operators.
type FilterOp string

const (
	OpEq       FilterOp = "=="       // Exact match
	OpContains FilterOp = "contains" // Case-sensitive substring match
)

// IsValid checks if the operator is valid.
func (op FilterOp) IsValid() bool {
	switch op {
	case OpEq, OpContains:
		return true
	}
	return false
}

// Filters is an ordered set of field predicates, all of which must hold.
// An empty Filters matches every record.
type Filters []Filter

// Filter represents a single field predicate.
type Filter struct {
	Field string   `json:"field"`
	Op    FilterOp `json:"op"`
	Value string   `json:"value"`
}

// Validate returns an error wrapping ErrInvalidFilter if the filter names no
// field or uses an unsupported operator.
func (f Filter) Validate() error {
	if f.Field == "" {
		return fmt.Errorf("%w: missing field", ErrInvalidFilter)
	}
	if !f.Op.IsValid() {
		return fmt.Errorf("%w: unsupported operator %q on %s", ErrInvalidFilter, f.Op, f.Field)
	}
	return nil
}

// Validate checks every filter and returns the first failure.
func (fs Filters) Validate() error {
	for _, f := range fs {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort controls result ordering.
type Sort struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// DefaultSortField is used when the caller names no sort field.
const DefaultSortField = FieldOwner

// DefaultSort returns ascending order by owner.
func DefaultSort() Sort {
	return Sort{Field: DefaultSortField, Direction: Asc}
}

// Descending reports whether the sort is descending.
func (s Sort) Descending() bool {
	return s.Direction == Desc
}
