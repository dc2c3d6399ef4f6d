package server

import (
	"github.com/gin-gonic/gin"

	"hello-samples/internal/handlers"
	"hello-samples/internal/middleware"
)

// NewRouter builds the greeting server's gin engine from the route table
func NewRouter(c *Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	// "/hello/" is a different path, not a redirect to "/hello"
	router.RedirectTrailingSlash = false

	router.Use(middleware.RequestID())
	// StructuredLogger wraps Recovery so a recovered panic is still logged as a 500
	router.Use(middleware.StructuredLogger(c.Logger))
	router.Use(middleware.Recovery(c.Logger))
	if c.Config.RateLimit.RPS > 0 {
		router.Use(middleware.RateLimiter(c.Logger, c.Config.RateLimit.RPS, c.Config.RateLimit.Burst))
	}

	handlers.SetupRoutes(router, handlers.Routes(c.HelloHandler))

	return router
}
