package services

import (
	"errors"
)

// Common service errors
var (
	// ErrInvalidInput is returned when a request parameter is malformed or out of range
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when no route or resource matches the request
	ErrNotFound = errors.New("not found")

	// ErrMethodNotAllowed is returned when a route exists but not for the request method
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// IsInvalidInput reports whether err was caused by bad client input
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound reports whether err was caused by a missing route or resource
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
