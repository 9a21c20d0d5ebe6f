package models

// MessageResponse is the body of every greeting endpoint
type MessageResponse struct {
	Message string `json:"message" example:"Hello again and again from REST API for Hackathon 2025!"`
}

// NatureImageResponse is the body of the nature image endpoint
type NatureImageResponse struct {
	Keyword  string `json:"keyword" example:"river"`
	ImageURL string `json:"imageUrl" example:"https://picsum.photos/id/1056/600/400"`
}

// FibonacciResponse is the body of the fibonacci endpoint
type FibonacciResponse struct {
	Number    int   `json:"number" example:"10"`
	Fibonacci int64 `json:"fibonacci" example:"55"`
}

// HealthResponse is the body of the health check endpoint
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Service   string `json:"service" example:"hackathon-demo-api"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp"`
}

// ValidationError represents a validation error with field details
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
	RequestID        string            `json:"request_id,omitempty"`
	Timestamp        string            `json:"timestamp"`
}
