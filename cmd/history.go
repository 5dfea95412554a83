package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// HistoryHandler handles the actions that read or reset the history file
type HistoryHandler struct {
	env *Env
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(env *Env) *HistoryHandler {
	return &HistoryHandler{env: env}
}

// HandleReload clears the history so every wallpaper is selectable again
func (h *HistoryHandler) HandleReload(ctx context.Context, c *cli.Command) error {
	h.env.Rotator.Reload()
	return nil
}

// HandleCurrent prints the current wallpaper
func (h *HistoryHandler) HandleCurrent(ctx context.Context, c *cli.Command) error {
	h.env.Rotator.Current()
	return nil
}

// GetFlags returns the CLI flags for history actions
func (h *HistoryHandler) GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "reload",
			Aliases: []string{"r"},
			Usage:   "Clear the history and make every wallpaper selectable",
		},
		&cli.BoolFlag{
			Name:    "current",
			Aliases: []string{"c"},
			Usage:   "Print the current wallpaper",
		},
	}
}
