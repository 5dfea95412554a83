// Package cmd provides command handlers for the CLI
package cmd

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/interfaces"
)

// Options lets callers replace the process-level collaborators.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Setter     interfaces.BackgroundSetter
	Notifier   interfaces.Notifier
	HTTPClient *http.Client
	IntN       func(n int) int
}

func (o *Options) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// NewRootCommand builds the randomwall command. Every action is a flag on the
// root command; without one a wallpaper is picked from the local directory.
func NewRootCommand(opts Options) *cli.Command {
	opts.defaults()
	env := &Env{}

	pick := NewPickHandler(env)
	favorite := NewFavoriteHandler(env)
	blacklist := NewBlacklistHandler(env)
	save := NewSaveHandler(env)
	history := NewHistoryHandler(env)
	stats := NewStatsHandler(env)

	flags := env.GetFlags()
	flags = append(flags, pick.GetFlags()...)
	flags = append(flags, favorite.GetFlags()...)
	flags = append(flags, blacklist.GetFlags()...)
	flags = append(flags, save.GetFlags()...)
	flags = append(flags, history.GetFlags()...)
	flags = append(flags, stats.GetFlags()...)

	return &cli.Command{
		Name:      constants.AppName,
		Usage:     "Set a random wallpaper from a directory or an image-of-the-day API",
		Version:   constants.AppVersion,
		ArgsUsage: "[url...]",
		Reader:    opts.Stdin,
		Writer:    opts.Stdout,
		ErrWriter: opts.Stderr,
		Flags:     flags,

		// URLs may contain commas
		DisableSliceFlagSeparator: true,

		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, env.Init(c, opts)
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			switch {
			case c.IsSet("save"):
				return save.Handle(ctx, c)
			case c.Bool("reload"):
				return history.HandleReload(ctx, c)
			case c.Bool("current"):
				return history.HandleCurrent(ctx, c)
			case c.Bool("favorite"):
				return favorite.Handle(ctx, c)
			case c.Bool("blacklist"):
				return blacklist.Handle(ctx, c)
			case c.Bool("delete"):
				return blacklist.HandleDeleteAll(ctx, c)
			case c.String("api") != "":
				return pick.HandleAPI(ctx, c)
			case c.Bool("stats"):
				return stats.Handle(ctx, c)
			default:
				return pick.Handle(ctx, c)
			}
		},
	}
}
