package analyses

import "errors"

var (
	// ErrNotFound is returned when no analysis exists for a document.
	ErrNotFound = errors.New("analysis not found")
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("invalid input")
)
