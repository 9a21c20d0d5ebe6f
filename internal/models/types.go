package models

import (
	"net/http"
)

// Common constants
const (
	// DefaultGuestName is used by the goodbye endpoint when no name is given
	DefaultGuestName = "Gast"

	// DefaultNatureKeyword is used by the nature image endpoint when no keyword is given
	DefaultNatureKeyword = "nature"

	// DefaultFibonacciNumber is used by the fibonacci endpoint when no number is given
	DefaultFibonacciNumber = "0"

	// MaxFibonacciNumber is the largest n whose Fibonacci number fits in an int64
	MaxFibonacciNumber = 92

	// PageTitle is the title and heading of the demo page
	PageTitle = "Hackathon 2025 Demo"

	// FollowupTitle is the title of the follow-up page
	FollowupTitle = "Hackathon 2025 Follow-up"
)

// Query holds the query parameters of a single request.
// Repeated keys keep only their first value.
type Query map[string]string

// HandlerResult pairs a response body with the HTTP status it is sent with
type HandlerResult struct {
	StatusCode int
	Body       interface{}
}

// OK wraps body in a 200 result
func OK(body interface{}) *HandlerResult {
	return &HandlerResult{StatusCode: http.StatusOK, Body: body}
}
