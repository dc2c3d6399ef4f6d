package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route maps a method and path to a handler
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Routes returns the route table of the greeting server
func Routes(hello *HelloHandler) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/hello", Handler: hello.Hello},
	}
}

// SetupRoutes registers every route of the table on the router
func SetupRoutes(router gin.IRoutes, routes []Route) {
	for _, r := range routes {
		router.Handle(r.Method, r.Path, r.Handler)
	}
}
