package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"hackathon-demo-api/internal/middleware"
	"hackathon-demo-api/internal/models"
	"hackathon-demo-api/internal/services"
)

// errorClass describes how an error is reported to the client
type errorClass struct {
	Status           int
	Title            string
	Message          string
	ValidationErrors []models.ValidationError
}

// classifyError maps a service error onto its HTTP status and response title.
// Anything outside the known taxonomy is an internal error whose details are
// not exposed.
func classifyError(err error) errorClass {
	switch {
	case services.IsInvalidInput(err):
		class := errorClass{
			Status:  http.StatusBadRequest,
			Title:   "Invalid input",
			Message: err.Error(),
		}
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			class.Title = "Validation failed"
			class.ValidationErrors = middleware.FormatValidationErrors(validationErrors)
		}
		return class

	case services.IsNotFound(err):
		return errorClass{
			Status:  http.StatusNotFound,
			Title:   "Not found",
			Message: err.Error(),
		}

	case errors.Is(err, services.ErrMethodNotAllowed):
		return errorClass{
			Status:  http.StatusMethodNotAllowed,
			Title:   "Method not allowed",
			Message: err.Error(),
		}

	default:
		return errorClass{
			Status:  http.StatusInternalServerError,
			Title:   "Internal server error",
			Message: "An internal error occurred",
		}
	}
}
