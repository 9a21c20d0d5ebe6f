package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"hackathon-demo-api/internal/models"
)

// FibonacciRequest is a parsed fibonacci query
type FibonacciRequest struct {
	Number int `json:"number" validate:"min=0,max=92"`
}

// fibonacciService implements the FibonacciService interface
type fibonacciService struct {
	validator *validator.Validate
}

// NewFibonacciService creates a new fibonacci service instance
func NewFibonacciService() FibonacciService {
	return &fibonacciService{
		validator: validator.New(),
	}
}

// ParseRequest converts the raw number parameter into a request.
// Non-integer input is rejected with ErrInvalidInput.
func (s *fibonacciService) ParseRequest(ctx context.Context, raw string) (*FibonacciRequest, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: number must be an integer, got %q", ErrInvalidInput, raw)
	}
	return &FibonacciRequest{Number: n}, nil
}

// Calculate validates req and computes its Fibonacci number
func (s *fibonacciService) Calculate(ctx context.Context, req *FibonacciRequest) (*models.FibonacciResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: fibonacci request cannot be nil", ErrInvalidInput)
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: validation failed: %w", ErrInvalidInput, err)
	}

	value, err := Fibonacci(req.Number)
	if err != nil {
		return nil, err
	}

	return &models.FibonacciResponse{
		Number:    req.Number,
		Fibonacci: value,
	}, nil
}

// Fibonacci returns the n-th Fibonacci number with fib(0) = 0 and fib(1) = 1.
// n must lie in [0, models.MaxFibonacciNumber].
func Fibonacci(n int) (int64, error) {
	if n < 0 || n > models.MaxFibonacciNumber {
		return 0, fmt.Errorf("%w: number must be between 0 and %d, got %d", ErrInvalidInput, models.MaxFibonacciNumber, n)
	}
	if n <= 1 {
		return int64(n), nil
	}

	var a, b int64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b, nil
}
