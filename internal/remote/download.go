package remote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/errors"
)

// HTTPDownloader saves remote images into a local directory.
type HTTPDownloader struct {
	client *http.Client
	logger *slog.Logger
}

// NewDownloader creates a downloader using client
func NewDownloader(client *http.Client, logger *slog.Logger) *HTTPDownloader {
	return &HTTPDownloader{client: client, logger: logger}
}

// FileName returns the base name of the URL path, which is the name a
// downloaded wallpaper is stored under.
func FileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", errors.NewValidationError("url", rawURL, "has no file name")
	}
	return name, nil
}

// Download copies the response body byte for byte to dir/<basename>. On a
// failed request nothing is written.
func (d *HTTPDownloader) Download(ctx context.Context, rawURL, dir string) (string, error) {
	name, err := FileName(rawURL)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrFileOperation, err)
	}

	resp, err := get(ctx, d.client, rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to get wallpaper: %w", err)
	}

	filePath := filepath.Join(dir, name)
	d.logger.Debug("Downloading wallpaper", "url", rawURL, "destination", filePath)
	if err := d.write(filePath, resp); err != nil {
		return "", err
	}
	return filePath, nil
}

func (d *HTTPDownloader) write(filePath string, resp *http.Response) error {
	defer resp.Body.Close()

	out, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(filePath)
		return fmt.Errorf("%w: %v", errors.ErrDownloadFailed, err)
	}

	d.logger.Info("Download completed", "path", filePath, "bytes_written", written)
	return nil
}
