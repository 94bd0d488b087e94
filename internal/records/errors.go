package records

import "errors"

var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("record not found")
)
