// Package rotator picks wallpapers and curates the blacklist and favorites.
package rotator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"path/filepath"

	"git.asdf.cafe/abs3nt/randomwall/internal/config"
	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/interfaces"
	"git.asdf.cafe/abs3nt/randomwall/internal/state"
)

// Deps are the external collaborators a Rotator drives.
type Deps struct {
	Setter     interfaces.BackgroundSetter
	Notifier   interfaces.Notifier
	Confirmer  interfaces.Confirmer
	Downloader interfaces.Downloader
	Executor   interfaces.ScriptExecutor
	Out        io.Writer
	// IntN returns a uniform int in [0, n). Defaults to math/rand/v2.
	IntN func(n int) int
}

// Rotator owns one invocation's worth of wallpaper selection.
type Rotator struct {
	cfg    *config.Config
	store  *state.Store
	deps   Deps
	logger *slog.Logger
}

// New creates a Rotator
func New(cfg *config.Config, store *state.Store, deps Deps, logger *slog.Logger) *Rotator {
	if deps.IntN == nil {
		deps.IntN = rand.IntN
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	return &Rotator{cfg: cfg, store: store, deps: deps, logger: logger}
}

// FileURI converts a local path into the file:// URI handed to the desktop.
func FileURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

// apply sets the background and runs the hook script. Neither failure aborts
// the pick: the wallpaper is already recorded in history.
func (r *Rotator) apply(ctx context.Context, uri string) {
	if err := r.deps.Setter.SetBackground(ctx, uri); err != nil {
		r.logger.Warn("Failed to set background", "uri", uri, "error", err)
	}
	if r.cfg.ScriptPath == "" || r.deps.Executor == nil {
		return
	}
	if err := r.deps.Executor.Execute(ctx, r.cfg.ScriptPath, uri); err != nil {
		r.logger.Warn("Script execution failed, but wallpaper was applied", "error", err)
	}
}

// report prints message, or sends it as a notification when notify is set.
func (r *Rotator) report(ctx context.Context, notify bool, message string) {
	if notify {
		r.notify(ctx, constants.NotifyTitle, message)
		return
	}
	fmt.Fprintln(r.deps.Out, message)
}

func (r *Rotator) notify(ctx context.Context, title, message string) {
	if err := r.deps.Notifier.Notify(ctx, title, message); err != nil {
		r.logger.Warn("Failed to send notification", "title", title, "error", err)
	}
}
