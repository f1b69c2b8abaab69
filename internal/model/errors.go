package model

import "errors"

// Error kinds. Concrete errors wrap one of these so callers can classify with errors.Is.
var (
	ErrValidation    = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrDuplicate     = errors.New("already exists")
	ErrConfiguration = errors.New("invalid configuration")
)
