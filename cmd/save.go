package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/randomwall/internal/interfaces"
	"git.asdf.cafe/abs3nt/randomwall/internal/validator"
)

// SaveHandler downloads wallpapers by URL into the wallpaper directory
type SaveHandler struct {
	env       *Env
	validator interfaces.Validator
}

// NewSaveHandler creates a new save handler
func NewSaveHandler(env *Env) *SaveHandler {
	return &SaveHandler{
		env:       env,
		validator: validator.NewValidator(),
	}
}

// Handle saves every URL given with --save and as positional arguments
func (h *SaveHandler) Handle(ctx context.Context, c *cli.Command) error {
	urls := append(c.StringSlice("save"), c.Args().Slice()...)
	if len(urls) == 0 {
		return fmt.Errorf("--save requires at least one URL")
	}
	if err := h.validator.ValidateURLs(urls); err != nil {
		return err
	}
	return h.env.Rotator.Save(ctx, urls)
}

// GetFlags returns the CLI flags for saving
func (h *SaveHandler) GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "save",
			Aliases: []string{"s"},
			Usage:   "Download wallpaper URLs into the wallpaper directory",
		},
	}
}
