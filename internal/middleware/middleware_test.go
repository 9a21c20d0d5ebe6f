package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-demo-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middlewares...)
	return router
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	router := newTestRouter(RequestID())
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	header := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, header)
	assert.Equal(t, header, seen)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestRequestID_EchoesInbound(t *testing.T) {
	router := newTestRouter(RequestID(), CorrelationID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	req.Header.Set("X-Correlation-ID", "corr-456")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "corr-456", w.Header().Get("X-Correlation-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	router := newTestRouter(CORS())
	router.GET("/api/hello", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/hello", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	router := newTestRouter(SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, contentSecurityPolicy, w.Header().Get("Content-Security-Policy"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
}

func TestRecovery_ReturnsJSON(t *testing.T) {
	router := newTestRouter(RequestID(), Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)
	assert.Equal(t, w.Header().Get("X-Request-ID"), body.RequestID)
}

func TestEnhancedErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		errType    gin.ErrorType
		err        error
		wantStatus int
		wantError  string
	}{
		{"private error", gin.ErrorTypePrivate, errors.New("encode failed"), http.StatusInternalServerError, "Internal server error"},
		{"public error", gin.ErrorTypePublic, errors.New("bad thing"), http.StatusBadRequest, "Request failed"},
		{"bind error", gin.ErrorTypeBind, errors.New("cannot bind"), http.StatusBadRequest, "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(EnhancedErrorHandler())
			router.GET("/", func(c *gin.Context) {
				_ = c.Error(tt.err).SetType(tt.errType)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}

func TestEnhancedErrorHandler_LeavesWrittenResponses(t *testing.T) {
	router := newTestRouter(EnhancedErrorHandler())
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		_ = c.Error(errors.New("tracked only"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestFormatValidationErrors(t *testing.T) {
	type sample struct {
		Number int    `validate:"min=0,max=92"`
		Name   string `validate:"required"`
	}

	err := validator.New().Struct(&sample{Number: 100})
	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))

	formatted := FormatValidationErrors(validationErrors)
	require.Len(t, formatted, 2)
	assert.Equal(t, "Number", formatted[0].Field)
	assert.Equal(t, "max", formatted[0].Tag)
	assert.Equal(t, "100", formatted[0].Value)
	assert.Equal(t, "Number must be at most 92", formatted[0].Message)
	assert.Equal(t, "Name is required", formatted[1].Message)
}

func TestLoggingMiddlewares_PassThrough(t *testing.T) {
	router := newTestRouter(RequestID(), StructuredLogger(), PerformanceMonitor(time.Nanosecond), ErrorTracker())
	router.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("tracked"))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?a=b", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}
