package rotator

import (
	"os"

	"git.asdf.cafe/abs3nt/randomwall/internal/selection"
)

// Stats summarizes the wallpaper directory and the state files.
type Stats struct {
	WallpaperDir string
	Candidates   int
	TotalBytes   uint64
	History      int
	Blacklist    int
	Favorites    int
	Current      string
}

// Stats collects counts without modifying any state.
func (r *Rotator) Stats() Stats {
	candidates := selection.Collect(r.cfg.WallpaperDir, r.logger)

	var total uint64
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil {
			total += uint64(info.Size())
		}
	}

	current, _ := r.store.Current()
	return Stats{
		WallpaperDir: r.cfg.WallpaperDir,
		Candidates:   len(candidates),
		TotalBytes:   total,
		History:      len(r.store.History()),
		Blacklist:    len(r.store.Blacklist()),
		Favorites:    len(r.store.Favorites()),
		Current:      current,
	}
}
