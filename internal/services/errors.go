package services

import "errors"

// Define common service errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("conflict")
)

// ValidationError is a client input error. Message is returned to the
// client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Create job validation failures, checked in this order.
var (
	ErrMissingJobFields  = &ValidationError{Message: "All fields are required."}
	ErrInvalidJobNumbers = &ValidationError{Message: "Salary, experience, and position must be valid numbers."}
)
