package handlers

import (
	"github.com/dhima/employee-directory/internal/api/response"
	"github.com/dhima/employee-directory/internal/database"
	"github.com/dhima/employee-directory/internal/logging"
	"github.com/gin-gonic/gin"
)

// StatsSource is implemented by database.Manager.
type StatsSource interface {
	Stats() database.Stats
}

// MetricsHandler handles metrics requests.
type MetricsHandler struct {
	logger logging.Logger
	stats  StatsSource
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(logger logging.Logger, stats StatsSource) *MetricsHandler {
	return &MetricsHandler{logger: logger, stats: stats}
}

// MetricsResponse represents the metrics response.
type MetricsResponse struct {
	Database database.Stats `json:"database"`
} // @name MetricsResponse

// Metrics godoc
// @Summary Get connection metrics
// @Description Returns counters for database connects, liveness failures and schema initialization failures
// @Tags System
// @Produce json
// @Success 200 {object} MetricsResponse
// @Router /metrics [get]
func (h *MetricsHandler) Metrics(c *gin.Context) {
	response.OK(c, MetricsResponse{Database: h.stats.Stats()})
}
