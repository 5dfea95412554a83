package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// BlacklistHandler handles --blacklist and --delete
type BlacklistHandler struct {
	env *Env
}

// NewBlacklistHandler creates a new blacklist handler
func NewBlacklistHandler(env *Env) *BlacklistHandler {
	return &BlacklistHandler{env: env}
}

// Handle blacklists (or with --delete removes) the current wallpaper and
// picks a replacement
func (h *BlacklistHandler) Handle(ctx context.Context, c *cli.Command) error {
	return h.env.Rotator.BlacklistCurrent(ctx, c.Bool("notify"), c.Bool("delete"))
}

// HandleDeleteAll permanently deletes every blacklisted file
func (h *BlacklistHandler) HandleDeleteAll(ctx context.Context, c *cli.Command) error {
	return h.env.Rotator.DeleteBlacklist(ctx)
}

// GetFlags returns the CLI flags for blacklisting
func (h *BlacklistHandler) GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "blacklist",
			Aliases: []string{"b"},
			Usage:   "Blacklist the current wallpaper and set a new one",
		},
		&cli.BoolFlag{
			Name:    "delete",
			Aliases: []string{"d"},
			Usage:   "With --blacklist delete the file instead; alone, delete all blacklisted files",
		},
	}
}
