package query

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/syntrixbase/todos/pkg/model"
)

// validate is the singleton validator instance used by the strict builders.
var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their query parameter name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("schema"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// ValidationError describes one rejected query parameter.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned by the strict builders. It matches
// model.ErrInvalidQuery under errors.Is.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return fmt.Sprintf("%s: %s", model.ErrInvalidQuery, strings.Join(msgs, "; "))
}

func (v ValidationErrors) Unwrap() error {
	return model.ErrInvalidQuery
}

func translateValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("Failed validation: %s", fe.Tag())
	}
}

// validateParams runs the struct tags of s and converts failures to ValidationErrors.
func validateParams(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return ValidationErrors{Errors: []ValidationError{{Field: "unknown", Message: err.Error()}}}
	}

	out := ValidationErrors{Errors: make([]ValidationError, 0, len(ve))}
	for _, fe := range ve {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fe.Field(),
			Message: translateValidationError(fe),
		})
	}
	return out
}
