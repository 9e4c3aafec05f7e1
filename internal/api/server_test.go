package api

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dhima/employee-directory/internal/api/handlers"
	"github.com/dhima/employee-directory/internal/database"
	"github.com/dhima/employee-directory/internal/logging"
	"github.com/dhima/employee-directory/internal/testutil/fakes"
	"github.com/dhima/employee-directory/pkg/config"
	"github.com/dhima/employee-directory/platform/events"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func testConfig(t *testing.T) config.App {
	return config.App{CORSOrigins: []string{"*"}, StaticDir: t.TempDir(), APIPort: "0"}
}

func newSQLiteServer(t *testing.T, pub *fakes.FakePublisher) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	opener := database.DriverOpener("sqlite", filepath.Join(t.TempDir(), "employees.db"))
	manager := database.NewManager(opener, logging.NewNoOpLogger())
	t.Cleanup(func() { _ = manager.Close() })

	var publisher events.Publisher
	if pub != nil {
		publisher = pub
	}
	srv, err := NewServer(testConfig(t), logging.NewNoOpLogger(), manager, publisher, handlers.Presentation{Color: "#16a085", MyName: "Directory"})
	require.NoError(t, err)
	return srv
}

func post(h http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(w, req)
	return w
}

func TestServer_AddThenFetch_RoundTrip(t *testing.T) {
	pub := &fakes.FakePublisher{}
	h := newSQLiteServer(t, pub).Router()

	w := post(h, "/addemp", url.Values{
		"emp_id": {"E1"}, "first_name": {"Jane"}, "last_name": {"Doe"},
		"primary_skill": {"Go"}, "location": {"Remote"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Doe")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = post(h, "/fetchdata", url.Values{"emp_id": {"E1"}})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<td id="emp_id">E1</td>`)
	assert.Contains(t, body, `<td id="first_name">Jane</td>`)
	assert.Contains(t, body, `<td id="last_name">Doe</td>`)
	assert.Contains(t, body, `<td id="primary_skill">Go</td>`)
	assert.Contains(t, body, `<td id="location">Remote</td>`)

	assert.Len(t, pub.Published(), 1)
}

func TestServer_FetchUnknown_RendersEmptyFields(t *testing.T) {
	h := newSQLiteServer(t, nil).Router()

	w := post(h, "/fetchdata", url.Values{"emp_id": {"E404"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<td id="emp_id"></td>`)
}

func TestServer_PagesAndOperationalRoutes(t *testing.T) {
	h := newSQLiteServer(t, nil).Router()

	for _, tc := range []struct {
		method, path string
		code         int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodPost, "/", http.StatusOK},
		{http.MethodGet, "/about", http.StatusOK},
		{http.MethodPost, "/getemp", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/addemp", http.StatusNotFound},
		{http.MethodGet, "/nope", http.StatusNotFound},
	} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.code, w.Code, "%s %s", tc.method, tc.path)
		if tc.code == http.StatusNotFound {
			assert.Contains(t, w.Body.String(), `"error":"route not found"`)
		}
	}
}

func startServing(t *testing.T, s *Server, handler http.Handler) (context.CancelFunc, <-chan error, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, &http.Server{Handler: handler}, ln) }()
	return cancel, done, "http://" + ln.Addr().String()
}

func TestServer_Serve_ReleasesResourcesOnShutdown(t *testing.T) {
	pub := &fakes.FakePublisher{}
	srv := newSQLiteServer(t, pub)
	_, err := srv.manager.Acquire(context.Background())
	require.NoError(t, err)

	cancel, done, base := startServing(t, srv, srv.Router())
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	require.NoError(t, <-done)
	assert.True(t, pub.Closed())
	assert.False(t, srv.manager.Stats().Connected)
}

func TestServer_Serve_ReleasesResourcesWhenShutdownTimesOut(t *testing.T) {
	pub := &fakes.FakePublisher{}
	srv := newSQLiteServer(t, pub)
	srv.shutdownTimeout = 20 * time.Millisecond
	_, err := srv.manager.Acquire(context.Background())
	require.NoError(t, err)

	entered := make(chan struct{})
	unblock := make(chan struct{})
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-unblock
	})
	cancel, done, base := startServing(t, srv, slow)
	defer close(unblock)

	go func() {
		if resp, err := http.Get(base + "/"); err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-entered
	cancel()

	err = <-done
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, pub.Closed())
	assert.False(t, srv.manager.Stats().Connected)
}

func TestServer_DatabaseUnreachable_Returns503(t *testing.T) {
	gin.SetMode(gin.TestMode)
	down := func(context.Context) (*sql.DB, error) { return nil, errors.New("connection refused") }
	manager := database.NewManager(down, logging.NewNoOpLogger())

	srv, err := NewServer(testConfig(t), logging.NewNoOpLogger(), manager, nil, handlers.Presentation{})
	require.NoError(t, err)
	h := srv.Router()

	w := post(h, "/addemp", url.Values{
		"emp_id": {"E1"}, "first_name": {"Jane"}, "last_name": {"Doe"},
		"primary_skill": {"Go"}, "location": {"Remote"},
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = post(h, "/fetchdata", url.Values{"emp_id": {"E1"}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	assert.Equal(t, int64(3), manager.Stats().ConnectFailures)
}
