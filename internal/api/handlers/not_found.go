package handlers

import (
	"net/http"

	"github.com/dhima/employee-directory/internal/api/response"
	"github.com/gin-gonic/gin"
)

// NotFound answers requests that match no route, including a GET on a
// POST-only form endpoint.
func NotFound(c *gin.Context) {
	response.Error(c, http.StatusNotFound, "route not found", gin.H{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	})
}
