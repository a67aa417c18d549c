package booking

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrInvalidCarReference = errors.New("car reference is not a valid id")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("booking not found")
)
