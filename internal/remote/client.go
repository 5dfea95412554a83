// Package remote provides the image-of-the-day sources and the downloader
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/errors"
)

// NewHTTPClient returns the client shared by sources and downloads.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: constants.RequestTimeout * time.Second,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        constants.MaxIdleConns,
			MaxIdleConnsPerHost: constants.MaxIdleConnsPerHost,
			IdleConnTimeout:     constants.IdleConnTimeout * time.Second,
		},
	}
}

// get issues a single GET. Anything but 200 is an APIError; there is no retry.
func get(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", constants.UserAgent)

	slog.Debug("Making HTTP request", "url", url)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrAPIRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, errors.NewAPIError(url, resp.StatusCode, "HTTP request failed")
	}
	return resp, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	resp, err := get(ctx, client, url)
	if err != nil {
		return err
	}
	return processResponse(resp, out)
}

func processResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	byt, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(byt, out); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidResponse, err)
	}

	return nil
}
