//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dhima/employee-directory/internal/api"
	"github.com/dhima/employee-directory/internal/api/handlers"
	"github.com/dhima/employee-directory/internal/database"
	"github.com/dhima/employee-directory/internal/logging"
	"github.com/dhima/employee-directory/pkg/config"
	"github.com/dhima/employee-directory/platform/events"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against the MySQL instance described by DBHOST, DBPORT, DBUSER, DBPWD and DATABASE.
func newMySQLServer(t *testing.T) (http.Handler, *database.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.FromEnv()
	cfg.StaticDir = t.TempDir()

	manager := database.NewManager(database.MySQLOpener(cfg.DSN()), logging.NewNoOpLogger())
	t.Cleanup(func() { _ = manager.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := manager.Acquire(ctx); err != nil {
		t.Skipf("mysql not reachable: %v", err)
	}

	srv, err := api.NewServer(cfg, logging.NewNoOpLogger(), manager, events.NoopPublisher{}, handlers.Presentation{Color: "#C1FF9C"})
	require.NoError(t, err)
	return srv.Router(), manager
}

func postForm(h http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(w, req)
	return w
}

func uniqueID() string {
	return "IT-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func TestEmployeeFlow_AddFetchSurvivesReconnect(t *testing.T) {
	h, manager := newMySQLServer(t)
	id := uniqueID()

	w := postForm(h, "/addemp", url.Values{
		"emp_id": {id}, "first_name": {"Jane"}, "last_name": {"Doe"},
		"primary_skill": {"Go"}, "location": {"Remote"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Doe")

	db, err := manager.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	w = postForm(h, "/fetchdata", url.Values{"emp_id": {id}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<td id="first_name">Jane</td>`)
	assert.Contains(t, w.Body.String(), `<td id="location">Remote</td>`)

	stats := manager.Stats()
	assert.Equal(t, int64(2), stats.Connects)
	assert.GreaterOrEqual(t, stats.LivenessFailures, int64(1))
}

func TestEmployeeFlow_UnknownIDRendersEmptyFields(t *testing.T) {
	h, _ := newMySQLServer(t)

	w := postForm(h, "/fetchdata", url.Values{"emp_id": {uniqueID()}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<td id="emp_id"></td>`)
}
