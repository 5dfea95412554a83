package rotator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/errors"
	"git.asdf.cafe/abs3nt/randomwall/internal/interfaces"
	"git.asdf.cafe/abs3nt/randomwall/internal/selection"
)

// Selectable returns the wallpapers eligible for the next pick. It may clear
// the history when every candidate has already been shown.
func (r *Rotator) Selectable() []string {
	candidates := selection.Collect(r.cfg.WallpaperDir, r.logger)
	return selection.Filter(
		candidates,
		r.store.Blacklist(),
		r.store.History(),
		r.store.Favorites(),
		func() {
			r.logger.Info("All wallpapers shown, resetting history")
			r.store.ClearHistory()
		},
	)
}

// Pick chooses a wallpaper from the local directory, records it in history
// and applies it. An empty selectable set is the only fatal outcome.
func (r *Rotator) Pick(ctx context.Context, notify bool) error {
	choices := r.Selectable()
	if len(choices) == 0 {
		return errors.ErrNoWallpapers
	}

	wallpaper := choices[r.deps.IntN(len(choices))]
	r.logger.Debug("Picked wallpaper", "path", wallpaper, "choices", len(choices))

	if _, err := os.Stat(wallpaper); err != nil {
		r.logger.Warn("Picked wallpaper no longer exists", "path", wallpaper)
		r.notify(ctx, constants.NotFoundTitle, wallpaper)
		return nil
	}

	return r.record(ctx, notify, wallpaper, FileURI(wallpaper), filepath.Base(wallpaper))
}

// PickFromSource asks a remote source for a wallpaper URL and applies it
// unmodified. Fetch failures are fatal and not retried.
func (r *Rotator) PickFromSource(ctx context.Context, src interfaces.Source, notify bool) error {
	wallpaper, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch wallpaper from %s: %w", src.Name(), err)
	}
	r.logger.Debug("Fetched remote wallpaper", "source", src.Name(), "url", wallpaper)
	return r.record(ctx, notify, wallpaper, wallpaper, wallpaper)
}

func (r *Rotator) record(ctx context.Context, notify bool, entry, uri, message string) error {
	if err := r.store.AddHistory(entry); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFileOperation, err)
	}
	r.apply(ctx, uri)
	r.report(ctx, notify, message)
	return nil
}
