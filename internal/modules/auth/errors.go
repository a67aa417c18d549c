package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrWrongPassword      = errors.New("current password does not match")
	ErrNotFound           = errors.New("profile not found")
)
