package cmd

import (
	"context"

	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/randomwall/internal/interfaces"
	"git.asdf.cafe/abs3nt/randomwall/internal/remote"
	"git.asdf.cafe/abs3nt/randomwall/internal/validator"
)

// PickHandler sets a new wallpaper, either from the local directory or from
// a remote image-of-the-day source.
type PickHandler struct {
	env       *Env
	validator interfaces.Validator
}

// NewPickHandler creates a new pick handler
func NewPickHandler(env *Env) *PickHandler {
	return &PickHandler{
		env:       env,
		validator: validator.NewValidator(),
	}
}

// Handle picks a random local wallpaper
func (h *PickHandler) Handle(ctx context.Context, c *cli.Command) error {
	return h.env.Rotator.Pick(ctx, c.Bool("notify"))
}

// HandleAPI fetches the wallpaper URL from the source named by --api
func (h *PickHandler) HandleAPI(ctx context.Context, c *cli.Command) error {
	src, err := remote.NewSource(c.String("api"), h.env.HTTP)
	if err != nil {
		return err
	}
	h.env.Logger.Debug("Fetching wallpaper from source", "source", src.Name())
	return h.env.Rotator.PickFromSource(ctx, src, c.Bool("notify"))
}

// GetFlags returns the CLI flags for picking
func (h *PickHandler) GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "api",
			Aliases:   []string{"a"},
			Validator: h.validator.ValidateSource,
			Usage:     "Use a wallpaper from an image-of-the-day API: desktoppr, bing",
		},
	}
}
