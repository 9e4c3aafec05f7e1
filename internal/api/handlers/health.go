package handlers

import (
	"context"
	"database/sql"
	"time"

	"github.com/dhima/employee-directory/internal/api/response"
	"github.com/dhima/employee-directory/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthProbeTimeout = 2 * time.Second

// ConnectionSource is implemented by database.Manager.
type ConnectionSource interface {
	Acquire(ctx context.Context) (*sql.DB, error)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger logging.Logger
	conns  ConnectionSource
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(logger logging.Logger, conns ConnectionSource) *HealthHandler {
	return &HealthHandler{logger: logger, conns: conns}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Service  string `json:"service" example:"employee-directory"`
	Version  string `json:"version" example:"1.0.0"`
	Database string `json:"database" example:"up"`
} // @name HealthResponse

// Health godoc
// @Summary Health check endpoint
// @Description Reports service health, including whether the database can be reached
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   "ok",
		Service:  "employee-directory",
		Version:  "1.0.0",
		Database: "up",
	}

	if _, err := h.conns.Acquire(ctx); err != nil {
		h.logger.Warn("health check: database unavailable", zap.Error(err))
		resp.Status = "degraded"
		resp.Database = "down"
		response.ServiceUnavailable(c, resp, "database unavailable")
		return
	}

	response.OK(c, resp)
}
