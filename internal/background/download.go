// Package background fetches the optional page background image at startup.
package background

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dhima/employee-directory/internal/logging"
	"go.uber.org/zap"
)

// FileName is the name the image is stored under inside the static directory.
const FileName = "background.jpg"

// Downloader saves a remote image into a local directory.
type Downloader struct {
	client *http.Client
	logger logging.Logger
}

// NewDownloader creates a downloader; a nil client gets a 30s timeout client.
func NewDownloader(client *http.Client, logger logging.Logger) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Downloader{client: client, logger: logger.With(zap.String("component", "background"))}
}

// Download fetches url into dir/background.jpg and returns the written path.
// An empty url is a no-op that returns "".
func (d *Downloader) Download(ctx context.Context, url, dir string) (string, error) {
	if url == "" {
		d.logger.Info("no background image configured")
		return "", nil
	}

	d.logger.Info("downloading background image", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch background image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch background image: unexpected status %d", resp.StatusCode)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create static dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	tmp, err := os.CreateTemp(dir, FileName+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	n, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("write background image: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("move background image: %w", err)
	}

	d.logger.Info("background image downloaded", zap.String("path", path), zap.Int64("bytes", n))
	return path, nil
}
