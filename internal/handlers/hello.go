package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HelloBody is the fixed greeting returned by GET /hello
const HelloBody = "Hello, World!"

// HelloHandler serves the greeting route
type HelloHandler struct {
	log logrus.FieldLogger
}

// NewHelloHandler creates a new HelloHandler
func NewHelloHandler(log logrus.FieldLogger) *HelloHandler {
	return &HelloHandler{log: log}
}

// Hello handles GET /hello
func (h *HelloHandler) Hello(c *gin.Context) {
	h.log.Info("Handling the /hello request")
	c.String(http.StatusOK, HelloBody)
}
