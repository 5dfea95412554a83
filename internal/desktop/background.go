package desktop

import (
	"context"
	"log/slog"
)

// gsettings keys that take the picture URI. The screensaver schema is the
// lock screen.
var gsettingsTargets = [][2]string{
	{"org.gnome.desktop.background", "picture-uri"},
	{"org.gnome.desktop.background", "picture-uri-dark"},
	{"org.gnome.desktop.screensaver", "picture-uri"},
}

// GSettingsSetter sets the GNOME desktop and lock-screen background.
type GSettingsSetter struct {
	run    CommandRunner
	logger *slog.Logger
}

// NewGSettingsSetter creates a setter using run to invoke gsettings
func NewGSettingsSetter(run CommandRunner, logger *slog.Logger) *GSettingsSetter {
	if run == nil {
		run = RunCommand
	}
	return &GSettingsSetter{run: run, logger: logger}
}

// SetBackground points every picture-uri key at uri. All keys are attempted;
// the first failure is returned.
func (g *GSettingsSetter) SetBackground(ctx context.Context, uri string) error {
	var first error
	for _, target := range gsettingsTargets {
		if err := g.run(ctx, "gsettings", "set", target[0], target[1], uri); err != nil {
			g.logger.Warn("gsettings failed", "schema", target[0], "key", target[1], "error", err)
			if first == nil {
				first = err
			}
			continue
		}
		g.logger.Debug("gsettings applied", "schema", target[0], "key", target[1], "uri", uri)
	}
	return first
}
