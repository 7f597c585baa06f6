package errors

import "errors"

// Sentinel errors shared by the service and API layers. Services wrap them
// with context; the API layer maps them to HTTP statuses with errors.Is.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current state
	// of a resource, e.g. sending while a reply is still streaming.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission signifies that the caller is not allowed to perform the action.
	ErrPermission = errors.New("permission denied")

	// ErrInternal signifies an unexpected error. It keeps implementation
	// details away from clients.
	ErrInternal = errors.New("internal server error")
)
