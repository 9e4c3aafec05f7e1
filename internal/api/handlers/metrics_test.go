package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhima/employee-directory/internal/database"
	"github.com/dhima/employee-directory/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedStats database.Stats

func (f fixedStats) Stats() database.Stats { return database.Stats(f) }

func TestMetrics_WhenCalled_ThenReturnsConnectionCounters(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	r := gin.New()
	stats := fixedStats{Connected: true, Connects: 3, ConnectFailures: 2, LivenessFailures: 1, SchemaFailures: 0}
	r.GET("/metrics", NewMetricsHandler(logging.NewNoOpLogger(), stats).Metrics)

	// Act
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var wrapper struct {
		Data MetricsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wrapper))
	assert.Equal(t, database.Stats(stats), wrapper.Data.Database)
}
