// Package services contains the business rules for projects and tasks:
// validation, uniqueness, capacity ceilings, ownership checks, and the
// overdue sweep.
package services

import "errors"

// The closed set of error kinds surfaced by the service layer. Front-ends
// match with errors.Is to choose a status code or message; nothing else
// escapes except wrapped storage failures.
var (
	// ErrValidation indicates malformed or out-of-range input
	ErrValidation = errors.New("validation failed")
	// ErrConflict indicates a duplicate project name
	ErrConflict = errors.New("conflict")
	// ErrCapacity indicates a configured ceiling has been reached
	ErrCapacity = errors.New("capacity reached")
	// ErrNotFound indicates the referenced project or task does not exist
	ErrNotFound = errors.New("not found")
)
