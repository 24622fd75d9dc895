package apperr

import "errors"

var (
	// ErrNotFound is returned when an item, edge, or interaction target does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidOperation is returned for structurally invalid requests
	// (self-alternative, unknown vote direction, unknown item type).
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrConflict is returned on duplicate creation attempts.
	ErrConflict = errors.New("conflict")
)
