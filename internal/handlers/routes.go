package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hackathon-demo-api/internal/middleware"
	"hackathon-demo-api/internal/models"
	"hackathon-demo-api/internal/services"
	"hackathon-demo-api/internal/web"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Services             *services.ServiceContainer
	SwaggerEnabled       bool
	SlowRequestThreshold time.Duration
}

// NewRouter creates a gin engine with all middleware and routes installed
func NewRouter(config *RouterConfig) (*gin.Engine, error) {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	SetupMiddleware(router, config)
	if err := SetupRoutes(router, config); err != nil {
		return nil, err
	}

	return router, nil
}

// SetupRoutes configures all routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) error {
	apiHandler := NewAPIHandler(config.Services)
	pageHandler, err := NewPageHandler(config.Services)
	if err != nil {
		return err
	}

	// JSON endpoints
	routes := NewRouteTable(apiHandler)
	for _, path := range routes.Paths() {
		router.GET(path, jsonHandler(routes[path]))
	}

	// HTML pages
	router.SetHTMLTemplate(pageHandler.Templates())
	pages := NewPageTable(pageHandler)
	for _, path := range pages.Paths() {
		router.GET(path, htmlHandler(pages[path]))
	}

	static, err := web.Static()
	if err != nil {
		return fmt.Errorf("failed to open static assets: %w", err)
	}
	router.StaticFS("/static", http.FS(static))

	// Swagger documentation
	if config.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, fmt.Errorf("%w: no route for %s %s", services.ErrNotFound, c.Request.Method, c.Request.URL.Path))
	})
	router.NoMethod(func(c *gin.Context) {
		abortWithError(c, fmt.Errorf("%w: %s %s", services.ErrMethodNotAllowed, c.Request.Method, c.Request.URL.Path))
	})

	return nil
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, config *RouterConfig) {
	// Request ID and correlation ID
	router.Use(middleware.RequestID())
	router.Use(middleware.CorrelationID())

	// Panics become JSON 500 responses
	router.Use(middleware.Recovery())

	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Structured logging
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.PerformanceMonitor(config.SlowRequestThreshold))
	router.Use(middleware.ErrorTracker())

	router.Use(middleware.EnhancedErrorHandler())
}

// jsonHandler adapts a RouteFunc to gin
func jsonHandler(route RouteFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := route(c.Request.Context(), queryFromRequest(c))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(result.StatusCode, result.Body)
	}
}

// htmlHandler adapts a PageFunc to gin
func htmlHandler(page PageFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, data := page(c.Request.Context())
		c.HTML(http.StatusOK, name, data)
	}
}

// abortWithError writes the error response for err. Internal errors are
// left on the context for EnhancedErrorHandler to answer.
func abortWithError(c *gin.Context, err error) {
	class := classifyError(err)
	if class.Status >= http.StatusInternalServerError {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.Abort()
		return
	}

	response := middleware.NewErrorResponse(c, class.Title, class.Message)
	response.ValidationErrors = class.ValidationErrors
	c.AbortWithStatusJSON(class.Status, response)
	_ = c.Error(err).SetType(gin.ErrorTypePublic)
}

// queryFromRequest keeps the first value of every query parameter
func queryFromRequest(c *gin.Context) models.Query {
	values := c.Request.URL.Query()
	query := make(models.Query, len(values))
	for key, v := range values {
		if len(v) > 0 {
			query[key] = v[0]
		}
	}
	return query
}
