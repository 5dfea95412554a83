package rotator

import (
	"context"
	"fmt"
	"path/filepath"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/errors"
	"git.asdf.cafe/abs3nt/randomwall/internal/state"
)

// FavoriteCurrent adds the current wallpaper to favorites. A remote current
// wallpaper is downloaded into the wallpaper directory first and the local
// copy is what gets listed.
func (r *Rotator) FavoriteCurrent(ctx context.Context, notify bool) error {
	wallpaper, ok := r.store.Current()
	if !ok {
		r.logger.Debug("No current wallpaper to favorite")
		return nil
	}

	if state.IsURL(wallpaper) {
		local, err := r.deps.Downloader.Download(ctx, wallpaper, r.cfg.WallpaperDir)
		if err != nil {
			return fmt.Errorf("download %s: %w", wallpaper, err)
		}
		r.logger.Info("Saved remote wallpaper", "url", wallpaper, "path", local)
		wallpaper = local
	}

	if err := r.store.AddFavorite(wallpaper); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFileOperation, err)
	}

	if notify {
		r.notify(ctx, constants.NotifyTitle, filepath.Base(wallpaper)+" added to favorites")
	}
	return nil
}

// BlacklistCurrent excludes the current wallpaper from future picks, or
// deletes it when del is set and the user confirms, then picks a replacement.
// Remote and favorite wallpapers are left alone.
func (r *Rotator) BlacklistCurrent(ctx context.Context, notify, del bool) error {
	wallpaper, ok := r.store.Current()
	if !ok || state.IsURL(wallpaper) || r.store.IsFavorite(wallpaper) {
		r.logger.Debug("Nothing to blacklist", "current", wallpaper)
		return nil
	}

	if notify {
		r.notify(ctx, constants.NotifyTitle, filepath.Base(wallpaper)+" added to blacklist")
	}

	prompt := fmt.Sprintf("Are you sure you want to PERMANENTLY delete the file %s (Y/N)? ", wallpaper)
	if del && r.deps.Confirmer.Confirm(prompt) {
		r.store.RemoveWallpaper(wallpaper)
	} else if err := r.store.AddBlacklist(wallpaper); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFileOperation, err)
	}

	return r.Pick(ctx, notify)
}

// DeleteBlacklist permanently deletes every blacklisted file after a single
// confirmation and then clears the blacklist.
func (r *Rotator) DeleteBlacklist(ctx context.Context) error {
	blacklist := r.store.Blacklist()
	if len(blacklist) == 0 {
		return nil
	}

	prompt := fmt.Sprintf("This will PERMANENTLY delete %d image(s). Are you sure (Y/N)? ", len(blacklist))
	if !r.deps.Confirmer.Confirm(prompt) {
		r.logger.Debug("Blacklist deletion declined")
		return nil
	}

	for _, wallpaper := range blacklist {
		if state.IsURL(wallpaper) {
			continue
		}
		r.store.RemoveWallpaper(wallpaper)
	}
	r.store.ClearBlacklist()
	return nil
}

// Save downloads each URL into the wallpaper directory without touching
// history. The first failure stops the batch.
func (r *Rotator) Save(ctx context.Context, urls []string) error {
	for _, u := range urls {
		local, err := r.deps.Downloader.Download(ctx, u, r.cfg.WallpaperDir)
		if err != nil {
			return fmt.Errorf("save %s: %w", u, err)
		}
		r.logger.Info("Saved wallpaper", "url", u, "path", local)
	}
	return nil
}

// Reload forgets the history so every wallpaper becomes eligible again.
func (r *Rotator) Reload() {
	r.store.ClearHistory()
}

// Current prints the current wallpaper.
func (r *Rotator) Current() {
	wallpaper, ok := r.store.Current()
	if !ok {
		wallpaper = constants.NoWallpaperText
	}
	fmt.Fprintln(r.deps.Out, wallpaper)
}
