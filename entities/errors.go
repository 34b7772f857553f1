package entities

import "errors"

// Failure taxonomy for the scoring core. Callers match with errors.Is and
// wrap with the offending asset/record identity.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrMissingInspection = errors.New("no inspection on record")
	ErrPersistence       = errors.New("persistence failure")
)
