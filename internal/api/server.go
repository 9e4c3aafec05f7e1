package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/dhima/employee-directory/docs"
	"github.com/dhima/employee-directory/internal/api/handlers"
	"github.com/dhima/employee-directory/internal/api/middleware"
	"github.com/dhima/employee-directory/internal/database"
	"github.com/dhima/employee-directory/internal/employees"
	"github.com/dhima/employee-directory/internal/logging"
	"github.com/dhima/employee-directory/internal/storage"
	"github.com/dhima/employee-directory/internal/web"
	"github.com/dhima/employee-directory/pkg/config"
	"github.com/dhima/employee-directory/platform/events"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Server orchestrates HTTP routing and dependencies for the directory.
type Server struct {
	config    config.App
	logger    logging.Logger
	router    *gin.Engine
	manager   *database.Manager
	publisher events.Publisher
	view      handlers.Presentation

	employeeService *employees.Service
	shutdownTimeout time.Duration
}

// NewServer wires the handlers around an existing connection manager.
func NewServer(cfg config.App, logger logging.Logger, manager *database.Manager, publisher events.Publisher, view handlers.Presentation) (*Server, error) {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	server := &Server{
		config:          cfg,
		logger:          logger,
		manager:         manager,
		publisher:       publisher,
		view:            view,
		employeeService: employees.NewService(storage.NewMySQLClient(manager), publisher, logger),
		shutdownTimeout: 30 * time.Second,
	}

	if err := server.setupRouter(); err != nil {
		return nil, err
	}
	return server, nil
}

// Router exposes the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() error {
	router := gin.New()
	zapLogger := s.logger.Zap()

	// Recovery first so it also covers the other middleware.
	router.Use(ginzap.RecoveryWithZap(zapLogger, true))
	router.Use(middleware.RequestID())
	router.Use(ginzap.Ginzap(zapLogger, time.RFC3339, true))
	if len(s.config.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     s.config.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: !allowsAnyOrigin(s.config.CORSOrigins),
			MaxAge:           12 * time.Hour,
		}))
	}

	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.Static("/static", s.config.StaticDir)

	router.GET("/health", handlers.NewHealthHandler(s.logger, s.manager).Health)
	router.GET("/metrics", handlers.NewMetricsHandler(s.logger, s.manager).Metrics)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pages := handlers.NewPageHandler(s.logger, s.view)
	router.Match([]string{http.MethodGet, http.MethodPost}, "/", pages.Home)
	router.Match([]string{http.MethodGet, http.MethodPost}, "/about", pages.About)
	router.Match([]string{http.MethodGet, http.MethodPost}, "/getemp", pages.GetEmp)

	employeeHandler := handlers.NewEmployeeHandler(s.logger, s.employeeService, s.view)
	router.POST("/addemp", employeeHandler.AddEmployee)
	router.POST("/fetchdata", employeeHandler.FetchData)
	router.NoRoute(handlers.NotFound)

	s.router = router
	return nil
}

// Serve starts the HTTP server and blocks until SIGINT or SIGTERM, then
// shuts down gracefully.
func (s *Server) Serve() error {
	addr := ":" + s.config.APIPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.logger.Error("failed to start server", zap.Error(err))
		s.release()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return s.serve(ctx, srv, ln)
}

// serve runs srv on ln until ctx is done. The publisher and database
// handle are released on every exit path.
func (s *Server) serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	defer s.release()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting employee directory",
			zap.String("address", ln.Addr().String()),
			zap.String("environment", s.config.Environment),
			zap.String("log_level", s.config.LogLevel),
		)

		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.logger.Error("server stopped unexpectedly", zap.Error(err))
		return err
	case <-ctx.Done():
	}
	s.logger.Info("shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("server stopped")
	return nil
}

func (s *Server) release() {
	if err := s.publisher.Close(); err != nil {
		s.logger.Error("failed to close event publisher", zap.Error(err))
	}
	if err := s.manager.Close(); err != nil {
		s.logger.Error("failed to close database connection", zap.Error(err))
	}
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
