package services

import (
	"context"
	"fmt"

	"hackathon-demo-api/internal/models"
)

const (
	helloMessage     = "Hello again and again from REST API for Hackathon 2025!"
	hello2Message    = "Dummy text for hello2"
	hello3Message    = "Another dummy text for hello3"
	hello2AltMessage = "Hello2 vom neuen REST-Controller!!"
	goodnightMessage = "Good night from REST API for Hackathon 2025!!!"
	goodbyTemplate   = "Goodbye, %s, from REST API for Hackathon 2025!!!"
)

// messageService implements the MessageService interface
type messageService struct{}

// NewMessageService creates a new message service instance
func NewMessageService() MessageService {
	return &messageService{}
}

// Hello returns the main greeting
func (s *messageService) Hello(ctx context.Context) *models.MessageResponse {
	return &models.MessageResponse{Message: helloMessage}
}

// Hello2 returns placeholder text
func (s *messageService) Hello2(ctx context.Context) *models.MessageResponse {
	return &models.MessageResponse{Message: hello2Message}
}

// Hello3 returns placeholder text
func (s *messageService) Hello3(ctx context.Context) *models.MessageResponse {
	return &models.MessageResponse{Message: hello3Message}
}

// Hello2Alt returns the alternative greeting
func (s *messageService) Hello2Alt(ctx context.Context) *models.MessageResponse {
	return &models.MessageResponse{Message: hello2AltMessage}
}

// Goodby returns a farewell for name. The name is inserted verbatim.
func (s *messageService) Goodby(ctx context.Context, name string) *models.MessageResponse {
	return &models.MessageResponse{Message: fmt.Sprintf(goodbyTemplate, name)}
}

// Goodnight returns the good night message
func (s *messageService) Goodnight(ctx context.Context) *models.MessageResponse {
	return &models.MessageResponse{Message: goodnightMessage}
}
