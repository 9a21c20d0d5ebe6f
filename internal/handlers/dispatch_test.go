package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-demo-api/internal/models"
	"hackathon-demo-api/pkg/lambda"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(newTestServices())
	require.NoError(t, err)
	return d
}

func TestRouteTable_Paths(t *testing.T) {
	routes := NewRouteTable(NewAPIHandler(newTestServices()))

	want := []string{
		"/api/fibonacci",
		"/api/goodby",
		"/api/goodnight",
		"/api/hello",
		"/api/hello2",
		"/api/hello2alt",
		"/api/hello3",
		"/api/nature-image",
		"/health",
	}
	if diff := cmp.Diff(want, routes.Paths()); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatcher_JSONRoutes(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		path  string
		query map[string]string
		want  interface{}
	}{
		{
			name: "hello",
			path: "/api/hello",
			want: &models.MessageResponse{Message: "Hello again and again from REST API for Hackathon 2025!"},
		},
		{
			name:  "goodby with name",
			path:  "/api/goodby",
			query: map[string]string{"name": "Alice"},
			want:  &models.MessageResponse{Message: "Goodbye, Alice, from REST API for Hackathon 2025!!!"},
		},
		{
			name: "goodby default",
			path: "/api/goodby",
			want: &models.MessageResponse{Message: "Goodbye, Gast, from REST API for Hackathon 2025!!!"},
		},
		{
			name:  "nature image",
			path:  "/api/nature-image",
			query: map[string]string{"keyword": "tree"},
			want:  &models.NatureImageResponse{Keyword: "tree", ImageURL: "https://picsum.photos/id/1011/600/400"},
		},
		{
			name:  "fibonacci",
			path:  "/api/fibonacci",
			query: map[string]string{"number": "10"},
			want:  &models.FibonacciResponse{Number: 10, Fibonacci: 55},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := d.HandleRequest(ctx, &lambda.Request{
				Method:      http.MethodGet,
				Path:        tt.path,
				QueryParams: tt.query,
			})
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, contentTypeJSON, resp.Headers["Content-Type"])

			wantBody, err := json.Marshal(tt.want)
			require.NoError(t, err)
			assert.JSONEq(t, string(wantBody), string(resp.Body))
		})
	}
}

func TestDispatcher_MatchesGinTransport(t *testing.T) {
	d := newTestDispatcher(t)
	router := newTestRouter(t)

	for _, target := range []string{
		"/api/hello",
		"/api/hello2",
		"/api/hello3",
		"/api/hello2alt",
		"/api/goodnight",
		"/api/goodby?name=Alice",
		"/api/nature-image?keyword=river",
		"/api/fibonacci?number=20",
	} {
		t.Run(target, func(t *testing.T) {
			path, rawQuery, _ := strings.Cut(target, "?")
			query := map[string]string{}
			if rawQuery != "" {
				key, value, _ := strings.Cut(rawQuery, "=")
				query[key] = value
			}

			resp, err := d.HandleRequest(context.Background(), &lambda.Request{
				Method:      http.MethodGet,
				Path:        path,
				QueryParams: query,
			})
			require.NoError(t, err)

			w := get(t, router, target)
			assert.Equal(t, w.Code, resp.StatusCode)
			assert.JSONEq(t, w.Body.String(), string(resp.Body))
		})
	}
}

func TestDispatcher_Errors(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		method     string
		path       string
		query      map[string]string
		wantStatus int
		wantError  string
	}{
		{"unknown path", http.MethodGet, "/api/missing", nil, http.StatusNotFound, "Not found"},
		{"wrong method", http.MethodPost, "/api/hello", nil, http.StatusMethodNotAllowed, "Method not allowed"},
		{"wrong method on page", http.MethodDelete, "/", nil, http.StatusMethodNotAllowed, "Method not allowed"},
		{"negative fibonacci", http.MethodGet, "/api/fibonacci", map[string]string{"number": "-1"}, http.StatusBadRequest, "Validation failed"},
		{"non numeric fibonacci", http.MethodGet, "/api/fibonacci", map[string]string{"number": "abc"}, http.StatusBadRequest, "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := d.HandleRequest(ctx, &lambda.Request{
				Method:      tt.method,
				Path:        tt.path,
				QueryParams: tt.query,
				Headers:     map[string]string{"X-Request-ID": "lambda-1"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "lambda-1", resp.Headers["X-Request-ID"])

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body, &body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, "lambda-1", body.RequestID)
		})
	}
}

func TestDispatcher_Pages(t *testing.T) {
	d := newTestDispatcher(t)

	resp, err := d.HandleRequest(context.Background(), &lambda.Request{Method: http.MethodGet, Path: "/"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, contentTypeHTML, resp.Headers["Content-Type"])
	assert.Contains(t, string(resp.Body), "<h1>Hackathon 2025 Demo</h1>")

	resp, err = d.HandleRequest(context.Background(), &lambda.Request{Method: http.MethodGet, Path: "/followup"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "<h1>Follow-up</h1>")
}

func TestDispatcher_StaticAssets(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	resp, err := d.HandleRequest(ctx, &lambda.Request{Method: http.MethodGet, Path: "/static/app.js"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Headers["Content-Type"], "javascript")
	assert.Contains(t, string(resp.Body), "apiResult")

	resp, err = d.HandleRequest(ctx, &lambda.Request{Method: http.MethodGet, Path: "/static/missing.js"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = d.HandleRequest(ctx, &lambda.Request{Method: http.MethodGet, Path: "/static/../web.go"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestJSONReply_EncodingFailure(t *testing.T) {
	resp := jsonReply(http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal server error","message":"An internal error occurred"}`, string(resp.Body))
}
