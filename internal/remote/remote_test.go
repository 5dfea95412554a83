package remote

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.asdf.cafe/abs3nt/randomwall/internal/errors"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBing_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/HPImageArchive.aspx", r.URL.Path)
		assert.Equal(t, "js", r.URL.Query().Get("format"))
		w.Write([]byte(`{"images":[{"urlbase":"/th?id=OHR.Fox_EN-US123"}]}`))
	}))
	defer srv.Close()

	b := NewBing(srv.Client())
	b.BaseURL = srv.URL

	got, err := b.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://www.bing.com/th?id=OHR.Fox_EN-US123_1920x1080.jpg", got)
}

func TestBing_EmptyArchive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"images":[]}`))
	}))
	defer srv.Close()

	b := NewBing(srv.Client())
	b.BaseURL = srv.URL

	_, err := b.Fetch(context.Background())
	assert.True(t, stderrors.Is(err, errors.ErrInvalidResponse), "got %v", err)
}

func TestDesktoppr_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/wallpapers/random", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("safe"))
		w.Write([]byte(`{"response":{"image":{"url":"https://a.desktopprassets.com/wallpapers/x/forest.jpg"}}}`))
	}))
	defer srv.Close()

	d := NewDesktoppr(srv.Client())
	d.BaseURL = srv.URL

	got, err := d.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://a.desktopprassets.com/wallpapers/x/forest.jpg", got)
}

func TestDesktoppr_ServerErrorIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	d := NewDesktoppr(srv.Client())
	d.BaseURL = srv.URL

	_, err := d.Fetch(context.Background())
	require.Error(t, err)

	var apiErr *errors.APIError
	require.True(t, stderrors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, 1, calls)
}

func TestNewSource(t *testing.T) {
	for _, name := range []string{"bing", "desktoppr"} {
		src, err := NewSource(name, http.DefaultClient)
		require.NoError(t, err)
		assert.Equal(t, name, src.Name())
	}

	_, err := NewSource("flickr", http.DefaultClient)
	assert.True(t, stderrors.Is(err, errors.ErrUnknownSource))
}

func TestDownload_RoundTrip(t *testing.T) {
	body := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02, 0xff}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "walls")
	d := NewDownloader(srv.Client(), discard())

	got, err := d.Download(context.Background(), srv.URL+"/x/test.png", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "test.png"), got)

	saved, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, body, saved)
}

func TestDownload_FailureLeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	d := NewDownloader(srv.Client(), discard())

	_, err := d.Download(context.Background(), srv.URL+"/missing.jpg", dir)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrAPIRequest))

	_, statErr := os.Stat(filepath.Join(dir, "missing.jpg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileName(t *testing.T) {
	name, err := FileName("http://x/test.png?size=large")
	require.NoError(t, err)
	assert.Equal(t, "test.png", name)

	_, err = FileName("http://x/")
	assert.Error(t, err)
}
