package selection

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCollect_MatchesRecognizedExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.JPG", "c.png", "d.svg", "e.jpeg", "f.PNG", "g.gif", "h.txt", "i.Jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	got := Collect(dir, discard())

	want := []string{"a.jpg", "b.JPG", "c.png", "d.svg", "e.jpeg", "f.PNG"}
	var names []string
	for _, p := range got {
		names = append(names, filepath.Base(p))
	}
	assert.ElementsMatch(t, want, names)
}

func TestCollect_GlobCharactersInDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "walls [old]")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("x"), 0o644))

	assert.Equal(t, []string{filepath.Join(dir, "a.png")}, Collect(dir, discard()))
}

func TestCollect_MissingDirectory(t *testing.T) {
	assert.Empty(t, Collect(filepath.Join(t.TempDir(), "missing"), discard()))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		blacklist  []string
		history    []string
		favorites  []string
		want       []string
		wantReset  bool
	}{
		{
			name:       "unseen candidates only",
			candidates: []string{"A", "B", "C"},
			history:    []string{"A"},
			want:       []string{"B", "C"},
		},
		{
			name:       "history exhaustion resets",
			candidates: []string{"A", "B"},
			history:    []string{"A", "B"},
			want:       []string{"A", "B"},
			wantReset:  true,
		},
		{
			name:       "favorites always eligible",
			candidates: []string{"A"},
			history:    []string{"A"},
			favorites:  []string{"A"},
			want:       []string{"A"},
			wantReset:  true,
		},
		{
			name:       "favorite in history kept alongside unseen",
			candidates: []string{"A", "B"},
			history:    []string{"A"},
			favorites:  []string{"A"},
			want:       []string{"A", "B"},
		},
		{
			name:       "reset triggers on post-blacklist set",
			candidates: []string{"A", "B"},
			blacklist:  []string{"B"},
			history:    []string{"A"},
			want:       []string{"A"},
			wantReset:  true,
		},
		{
			name:       "blacklisted never returned",
			candidates: []string{"A", "B", "C"},
			blacklist:  []string{"B"},
			want:       []string{"A", "C"},
		},
		{
			name:       "favorites bypass blacklist",
			candidates: []string{"A", "B"},
			blacklist:  []string{"B"},
			favorites:  []string{"B"},
			want:       []string{"A", "B"},
		},
		{
			name:       "everything blacklisted yields nothing",
			candidates: []string{"A"},
			blacklist:  []string{"A"},
			history:    []string{"A"},
			favorites:  []string{"/elsewhere/F"},
			want:       nil,
		},
		{
			name:      "empty candidates yield nothing",
			history:   []string{"A"},
			favorites: []string{"F"},
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset := false
			got := Filter(tt.candidates, tt.blacklist, tt.history, tt.favorites, func() { reset = true })
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantReset, reset)
		})
	}
}

func TestFilter_Deduplicates(t *testing.T) {
	got := Filter([]string{"B", "A"}, nil, nil, []string{"A", "A"}, nil)
	assert.Equal(t, []string{"A", "B"}, got)
}
