package services

import (
	"context"

	"hackathon-demo-api/internal/models"
)

// MessageService defines the greeting endpoints
type MessageService interface {
	Hello(ctx context.Context) *models.MessageResponse
	Hello2(ctx context.Context) *models.MessageResponse
	Hello3(ctx context.Context) *models.MessageResponse
	Hello2Alt(ctx context.Context) *models.MessageResponse
	Goodby(ctx context.Context, name string) *models.MessageResponse
	Goodnight(ctx context.Context) *models.MessageResponse
}

// NatureImageService maps keywords to image URLs
type NatureImageService interface {
	Resolve(ctx context.Context, keyword string) *models.NatureImageResponse
	Keywords(ctx context.Context) []string
}

// FibonacciService parses and answers fibonacci queries
type FibonacciService interface {
	ParseRequest(ctx context.Context, raw string) (*FibonacciRequest, error)
	Calculate(ctx context.Context, req *FibonacciRequest) (*models.FibonacciResponse, error)
}
