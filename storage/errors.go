package storage

import "errors"

// Store errors. Callers match them with errors.Is and map them to a
// re-rendered form or an error page; none of them is fatal.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrValidation   = errors.New("validation failed")
)

// ValidationError carries the user-facing message for a rejected field.
// It matches ErrValidation under errors.Is, so callers can branch on the
// category and still show the specific message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
