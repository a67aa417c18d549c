package inventory

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("car not found")
)
