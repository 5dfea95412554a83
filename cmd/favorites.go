package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// FavoriteHandler handles the --favorite action
type FavoriteHandler struct {
	env *Env
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(env *Env) *FavoriteHandler {
	return &FavoriteHandler{env: env}
}

// Handle adds the current wallpaper to favorites
func (h *FavoriteHandler) Handle(ctx context.Context, c *cli.Command) error {
	return h.env.Rotator.FavoriteCurrent(ctx, c.Bool("notify"))
}

// GetFlags returns the CLI flags for favorites
func (h *FavoriteHandler) GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "favorite",
			Aliases: []string{"f"},
			Usage:   "Add the current wallpaper to favorites",
		},
	}
}
