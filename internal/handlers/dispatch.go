package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"hackathon-demo-api/internal/models"
	"hackathon-demo-api/internal/services"
	"hackathon-demo-api/internal/web"
	"hackathon-demo-api/pkg/lambda"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"

	staticPrefix = "/static/"
)

// RouteFunc computes the result of one JSON endpoint from the query parameters
type RouteFunc func(ctx context.Context, query models.Query) (*models.HandlerResult, error)

// RouteTable maps request paths to JSON endpoints
type RouteTable map[string]RouteFunc

// PageTable maps request paths to HTML pages
type PageTable map[string]PageFunc

// NewRouteTable builds the JSON endpoint table
func NewRouteTable(h *APIHandler) RouteTable {
	return RouteTable{
		"/api/hello":        h.Hello,
		"/api/hello2":       h.Hello2,
		"/api/hello3":       h.Hello3,
		"/api/hello2alt":    h.Hello2Alt,
		"/api/goodby":       h.Goodby,
		"/api/goodnight":    h.Goodnight,
		"/api/nature-image": h.NatureImage,
		"/api/fibonacci":    h.Fibonacci,
		"/health":           h.Health,
	}
}

// NewPageTable builds the HTML page table
func NewPageTable(h *PageHandler) PageTable {
	return PageTable{
		"/":         h.Index,
		"/followup": h.Followup,
	}
}

// Paths returns the registered paths in sorted order
func (t RouteTable) Paths() []string {
	paths := make([]string, 0, len(t))
	for p := range t {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Paths returns the registered paths in sorted order
func (t PageTable) Paths() []string {
	paths := make([]string, 0, len(t))
	for p := range t {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Dispatcher routes framework-neutral requests through the route and page
// tables. It backs the Lambda entry point.
type Dispatcher struct {
	routes RouteTable
	pages  PageTable
	render *PageHandler
	static fs.FS
}

// NewDispatcher creates a dispatcher for the given services
func NewDispatcher(container *services.ServiceContainer) (*Dispatcher, error) {
	pageHandler, err := NewPageHandler(container)
	if err != nil {
		return nil, err
	}

	static, err := web.Static()
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	return &Dispatcher{
		routes: NewRouteTable(NewAPIHandler(container)),
		pages:  NewPageTable(pageHandler),
		render: pageHandler,
		static: static,
	}, nil
}

// HandleRequest answers req. Errors are reported in the response; the
// returned error is always nil.
func (d *Dispatcher) HandleRequest(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	requestID := req.Headers["X-Request-ID"]
	if requestID == "" {
		requestID = req.Headers["x-request-id"]
	}

	resp := d.dispatch(ctx, req, requestID)
	if resp.Headers == nil {
		resp.Headers = map[string]string{}
	}
	if requestID != "" {
		resp.Headers["X-Request-ID"] = requestID
	}

	logrus.WithFields(logrus.Fields{
		"request_id":  requestID,
		"method":      req.Method,
		"path":        req.Path,
		"status_code": resp.StatusCode,
	}).Info("Request completed")

	return resp, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, req *lambda.Request, requestID string) *lambda.Response {
	if strings.HasPrefix(req.Path, staticPrefix) {
		return d.asset(req, requestID)
	}

	route, isRoute := d.routes[req.Path]
	page, isPage := d.pages[req.Path]

	if !isRoute && !isPage {
		return errorReply(fmt.Errorf("%w: no route for %s %s", services.ErrNotFound, req.Method, req.Path), requestID)
	}
	if req.Method != http.MethodGet {
		return errorReply(fmt.Errorf("%w: %s %s", services.ErrMethodNotAllowed, req.Method, req.Path), requestID)
	}

	if isPage {
		var buf bytes.Buffer
		if err := d.render.Render(ctx, &buf, page); err != nil {
			logrus.WithError(err).WithField("path", req.Path).Error("Page rendering failed")
			return errorReply(err, requestID)
		}
		return &lambda.Response{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{"Content-Type": contentTypeHTML},
			Body:       buf.Bytes(),
		}
	}

	result, err := route(ctx, models.Query(req.QueryParams))
	if err != nil {
		return errorReply(err, requestID)
	}
	return jsonReply(result.StatusCode, result.Body)
}

// asset serves a file from the embedded static tree
func (d *Dispatcher) asset(req *lambda.Request, requestID string) *lambda.Response {
	name := strings.TrimPrefix(req.Path, staticPrefix)
	data, err := fs.ReadFile(d.static, name)
	if err != nil {
		return errorReply(fmt.Errorf("%w: no asset %s", services.ErrNotFound, req.Path), requestID)
	}
	if req.Method != http.MethodGet {
		return errorReply(fmt.Errorf("%w: %s %s", services.ErrMethodNotAllowed, req.Method, req.Path), requestID)
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": contentType},
		Body:       data,
	}
}

// jsonReply serializes body. A body that cannot be encoded becomes a 500.
func jsonReply(status int, body interface{}) *lambda.Response {
	data, err := json.Marshal(body)
	if err != nil {
		logrus.WithError(err).Error("Failed to encode response body")
		status = http.StatusInternalServerError
		data = []byte(`{"error":"Internal server error","message":"An internal error occurred"}`)
	}

	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       data,
	}
}

func errorReply(err error, requestID string) *lambda.Response {
	class := classifyError(err)
	return jsonReply(class.Status, models.ErrorResponse{
		Error:            class.Title,
		Message:          class.Message,
		ValidationErrors: class.ValidationErrors,
		RequestID:        requestID,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	})
}
