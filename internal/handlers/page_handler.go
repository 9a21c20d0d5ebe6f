package handlers

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"hackathon-demo-api/internal/models"
	"hackathon-demo-api/internal/services"
	"hackathon-demo-api/internal/web"
)

// PageData is passed to the page templates
type PageData struct {
	Title    string
	Heading  string
	Endpoint string
	Keywords []string
}

// PageFunc selects the template and data for a page
type PageFunc func(ctx context.Context) (string, *PageData)

// PageHandler renders the HTML pages
type PageHandler struct {
	templates *template.Template
	services  *services.ServiceContainer
}

// NewPageHandler creates a new page handler with the embedded templates
func NewPageHandler(container *services.ServiceContainer) (*PageHandler, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	return &PageHandler{
		templates: templates,
		services:  container,
	}, nil
}

// Templates returns the parsed page templates
func (h *PageHandler) Templates() *template.Template {
	return h.templates
}

// Index is the demo page with the "Test REST" button
func (h *PageHandler) Index(ctx context.Context) (string, *PageData) {
	return "index.html", &PageData{
		Title:    models.PageTitle,
		Heading:  models.PageTitle,
		Endpoint: "/api/hello",
	}
}

// Followup lists the keywords with curated nature images
func (h *PageHandler) Followup(ctx context.Context) (string, *PageData) {
	return "followup.html", &PageData{
		Title:    models.FollowupTitle,
		Heading:  "Follow-up",
		Keywords: h.services.NatureImageService.Keywords(ctx),
	}
}

// Render writes the page produced by page to w
func (h *PageHandler) Render(ctx context.Context, w io.Writer, page PageFunc) error {
	name, data := page(ctx)
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
