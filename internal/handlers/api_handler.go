package handlers

import (
	"context"
	"time"

	"hackathon-demo-api/internal/models"
	"hackathon-demo-api/internal/services"
)

const (
	serviceName    = "hackathon-demo-api"
	serviceVersion = "1.0.0"
)

// APIHandler answers the JSON endpoints
type APIHandler struct {
	services *services.ServiceContainer
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(container *services.ServiceContainer) *APIHandler {
	return &APIHandler{
		services: container,
	}
}

// @Summary Hello
// @Description Returns the main greeting
// @Tags messages
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /api/hello [get]
func (h *APIHandler) Hello(ctx context.Context, query models.Query) (*models.HandlerResult, error) {
	return models.OK(h.services.MessageService.Hello(ctx)), nil
}

// @Summary Hello2
// @Description Returns placeholder text
// @Tags messages
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /api/hello2 [get]
func (h *APIHandler) Hello2(ctx context.Context, query models.Query) (*models.HandlerResult, error) {
	return models.OK(h.services.MessageService.Hello2(ctx)), nil
}

// @Summary Hello3
// @Description Returns placeholder text
// @Tags messages
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /api/hello3 [get]
func (h *APIHandler) Hello3(ctx context.Context, query models.Query) (*models.HandlerResult, error) {
	return models.OK(h.services.MessageService.Hello3(ctx)), nil
}

// @Summary Alternative hello
// @Description Returns the alternative greeting
// @Tags messages
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /api/hello2alt [get]
func (h *APIHandler) Hello2Alt(ctx context.Context, query models.Query) (*models.HandlerResult, error) {
	return models.OK(h.services.MessageService.Hello2Alt(ctx)), nil
}

// @Summary Goodbye
// @Description Says goodbye to the given name
// @Tags messages
// @Produce json
// @Param name query string false "Name to say goodbye to" default(Gast)
// @Success 200 {object} models.MessageResponse
// @Router /api/goodby [get]
func (h *APIHandler) Goodby(ctx context.Context, query models.Query) (*models.HandlerResult, error) {
	name := services.ResolveParam(query, "name", h.services.Defaults.GuestName)
	return models.OK(h.services.MessageService.Goodby(ctx, name)), nil
}

// @Summary Good night
// @Description Returns the good night message
// @Tags messages
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /api/goodnight [get]
func (h *APIHandler) Goodnight(ctx context.Context, query models.Query) (*models.HandlerResult, error) {
	return models.OK(h.services.MessageService.Goodnight(ctx)), nil
}

// @Summary Nature image
// @Description Returns an image URL for a nature keyword
// @Tags images
// @Produce json
// @Param keyword query string false "Keyword such as tree, river or mountain" default(nature)
// @Success 200 {object} models.NatureImageResponse
// @Router /api/nature-image [get]
func (h *APIHandler) NatureImage(ctx context.Context, query models.Query) (*models.HandlerResult, error) {
	keyword := services.ResolveParam(query, "keyword", h.services.Defaults.NatureKeyword)
	return models.OK(h.services.NatureImageService.Resolve(ctx, keyword)), nil
}

// @Summary Fibonacci
// @Description Computes the n-th Fibonacci number for 0 <= n <= 92
// @Tags math
// @Produce json
// @Param number query int false "Index in the Fibonacci sequence" default(0) minimum(0) maximum(92)
// @Success 200 {object} models.FibonacciResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/fibonacci [get]
func (h *APIHandler) Fibonacci(ctx context.Context, query models.Query) (*models.HandlerResult, error) {
	raw := services.ResolveParam(query, "number", h.services.Defaults.FibonacciNumber)

	req, err := h.services.FibonacciService.ParseRequest(ctx, raw)
	if err != nil {
		return nil, err
	}

	resp, err := h.services.FibonacciService.Calculate(ctx, req)
	if err != nil {
		return nil, err
	}

	return models.OK(resp), nil
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *APIHandler) Health(ctx context.Context, query models.Query) (*models.HandlerResult, error) {
	return models.OK(&models.HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Version:   serviceVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}), nil
}
