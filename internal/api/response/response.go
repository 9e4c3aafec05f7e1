package response

import (
	"net/http"

	"github.com/dhima/employee-directory/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// SuccessResponse represents a successful API response.
type SuccessResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse represents an error API response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

// Success sends a successful response with data.
func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, SuccessResponse{
		Data:    data,
		Message: message,
	})
}

// Error sends an error response with details.
func Error(c *gin.Context, statusCode int, err string, details interface{}) {
	c.JSON(statusCode, ErrorResponse{
		Error:   err,
		Details: details,
		TraceID: middleware.GetRequestID(c),
	})
}

// OK sends a 200 OK response.
func OK(c *gin.Context, data interface{}) {
	Success(c, http.StatusOK, data, "")
}

// ServiceUnavailable sends a 503 with data describing the degraded state.
func ServiceUnavailable(c *gin.Context, data interface{}, message string) {
	Success(c, http.StatusServiceUnavailable, data, message)
}

// Page renders an HTML template. The request ID is always available to the
// template as "request_id".
func Page(c *gin.Context, statusCode int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["request_id"] = middleware.GetRequestID(c)
	c.HTML(statusCode, name, data)
}
