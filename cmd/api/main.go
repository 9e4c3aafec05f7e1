package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhima/employee-directory/internal/api"
	"github.com/dhima/employee-directory/internal/api/handlers"
	"github.com/dhima/employee-directory/internal/background"
	"github.com/dhima/employee-directory/internal/database"
	"github.com/dhima/employee-directory/internal/logging"
	"github.com/dhima/employee-directory/internal/theme"
	"github.com/dhima/employee-directory/pkg/config"
	"github.com/dhima/employee-directory/platform/events"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Employee Directory API
// @version 1.0
// @description Form-based employee directory backed by a single MySQL table.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @schemes http https

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:          "employee-directory",
		Short:        "Serve the employee directory web application",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), color)
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "accent color ("+strings.Join(theme.Names(), ",")+"); overrides APP_COLOR")
	return cmd
}

func run(ctx context.Context, flagColor string) error {
	envErr := godotenv.Load()

	cfg := config.FromEnv()
	logger, err := logging.NewLogger(logging.Options{
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogEncoding,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Debug("no .env file loaded, relying on process environment", zap.Error(envErr))
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	th, err := resolveTheme(logger, flagColor, cfg.AppColor)
	if err != nil {
		return err
	}

	downloader := background.NewDownloader(nil, logger)
	if _, err := downloader.Download(ctx, cfg.BackgroundImageURL, cfg.StaticDir); err != nil {
		logger.Warn("background image download failed", zap.Error(err))
	}

	manager := database.NewManager(database.MySQLOpener(cfg.DSN()), logger)
	publisher := events.New(cfg.KafkaBrokerList(), cfg.KafkaTopic, logger)

	view := handlers.Presentation{
		Color:      th.Hex,
		MyName:     cfg.MyName,
		Background: fileExists(filepath.Join(cfg.StaticDir, background.FileName)),
	}

	srv, err := api.NewServer(cfg, logger, manager, publisher, view)
	if err != nil {
		logger.Error("failed to build server", zap.Error(err))
		return err
	}
	return srv.Serve()
}

func resolveTheme(logger logging.Logger, flagColor, envColor string) (theme.Theme, error) {
	th, err := theme.Resolve(flagColor, envColor, nil)
	if err != nil {
		logger.Error("unsupported color", zap.Error(err))
		return theme.Theme{}, err
	}

	switch th.Source {
	case theme.SourceFlag:
		logger.Info("color from command line argument", zap.String("color", th.Name))
		if envColor != "" {
			logger.Info("command line color takes precedence over environment", zap.String("env_color", envColor))
		}
	case theme.SourceEnv:
		logger.Info("color from environment variable", zap.String("color", th.Name))
	default:
		logger.Info("no color configured, picked a random color", zap.String("color", th.Name))
	}
	return th, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
