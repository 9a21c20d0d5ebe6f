package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"hackathon-demo-api/internal/models"
)

// NewErrorResponse builds an error body stamped with the request ID of c
func NewErrorResponse(c *gin.Context, title, message string) models.ErrorResponse {
	return models.ErrorResponse{
		Error:     title,
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// EnhancedErrorHandler turns errors left on the context by handlers into a
// JSON error response when the handler did not write one itself.
func EnhancedErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last()
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
			"error_type": fmt.Sprintf("%d", err.Type),
		}).Error("Request error")

		switch err.Type {
		case gin.ErrorTypeBind:
			response := NewErrorResponse(c, "Invalid request format", err.Error())
			var validationErrors validator.ValidationErrors
			if errors.As(err.Err, &validationErrors) {
				response.Error = "Validation failed"
				response.ValidationErrors = FormatValidationErrors(validationErrors)
			}
			c.JSON(http.StatusBadRequest, response)

		case gin.ErrorTypePublic:
			c.JSON(http.StatusBadRequest, NewErrorResponse(c, "Request failed", err.Error()))

		default:
			c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "Internal server error", "An internal error occurred"))
		}
	}
}

// FormatValidationErrors converts validator errors into response entries
func FormatValidationErrors(validationErrors validator.ValidationErrors) []models.ValidationError {
	var errs []models.ValidationError

	for _, err := range validationErrors {
		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("%s is invalid", err.Field())
		}

		errs = append(errs, models.ValidationError{
			Field:   err.Field(),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: message,
		})
	}

	return errs
}
