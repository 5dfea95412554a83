// Package selection computes the set of wallpapers eligible for the next pick.
package selection

import (
	"log/slog"
	"path/filepath"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
)

// Collect returns every file in dir whose extension is one of the recognized
// image extensions. Order is not significant.
func Collect(dir string, logger *slog.Logger) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, ext := range constants.Extensions {
		pattern := filepath.Join(escapeGlob(dir), "*."+ext)
		matches, err := filepath.Glob(pattern)
		if err != nil {
			logger.Warn("Failed to glob wallpaper directory", "pattern", pattern, "error", err)
			continue
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	logger.Debug("Collected candidates", "dir", dir, "count", len(out))
	return out
}

// escapeGlob quotes glob metacharacters in a literal directory name.
func escapeGlob(dir string) string {
	var b []byte
	for i := 0; i < len(dir); i++ {
		switch dir[i] {
		case '*', '?', '[', '\\':
			b = append(b, '\\')
		}
		b = append(b, dir[i])
	}
	return string(b)
}
