// Package validator evaluates the `validate` tags on the project's request
// and domain structs. Handlers use Validate for per-field 422 details;
// services use Check as a last guard before a row is written.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns a field→tag map of every failing field, nil when the
// struct is clean. The map feeds response.ErrorWithDetails.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errors[fieldErr.Field()] = fieldErr.Tag()
	}
	return errors
}

// Check reports only the first failing field as a plain error, which callers
// outside the HTTP layer wrap into their own validation error. Field order
// follows the struct definition, so the result is deterministic.
func Check(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	first := err.(validator.ValidationErrors)[0]
	return fmt.Errorf("%s fails %q", strings.ToLower(first.Field()), first.Tag())
}
