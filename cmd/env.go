package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/randomwall/internal/config"
	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/desktop"
	"git.asdf.cafe/abs3nt/randomwall/internal/errors"
	"git.asdf.cafe/abs3nt/randomwall/internal/executor"
	"git.asdf.cafe/abs3nt/randomwall/internal/remote"
	"git.asdf.cafe/abs3nt/randomwall/internal/rotator"
	"git.asdf.cafe/abs3nt/randomwall/internal/state"
	"git.asdf.cafe/abs3nt/randomwall/internal/validator"
)

// Env is the per-invocation wiring shared by the handlers. It is filled in
// by Init once flags have been parsed.
type Env struct {
	Config  *config.Config
	Store   *state.Store
	Rotator *rotator.Rotator
	HTTP    *http.Client
	Logger  *slog.Logger
	Stdout  io.Writer
}

// Init loads the configuration, applies flag overrides and builds the
// collaborators.
func (e *Env) Init(c *cli.Command, opts Options) error {
	cfg, err := config.Load(c.String("config-dir"))
	if err != nil {
		return err
	}

	if dir := c.String("wallpaper-dir"); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return err
		}
		cfg.WallpaperDir = expanded
	}
	if script := c.String("script"); script != "" {
		cfg.ScriptPath = script
	}
	if notifier := c.String("notifier"); notifier != "" {
		cfg.Notifier = notifier
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	level := cfg.Level()
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	client := opts.HTTPClient
	if client == nil {
		client = remote.NewHTTPClient()
	}
	setter := opts.Setter
	if setter == nil {
		setter = desktop.NewGSettingsSetter(nil, logger)
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = desktop.NewNotifier(cfg.Notifier, logger)
	}

	store := state.NewStore(cfg, logger)
	e.Config = cfg
	e.Store = store
	e.HTTP = client
	e.Logger = logger
	e.Stdout = opts.Stdout
	e.Rotator = rotator.New(cfg, store, rotator.Deps{
		Setter:     setter,
		Notifier:   notifier,
		Confirmer:  desktop.NewPromptConfirmer(opts.Stdin, opts.Stdout),
		Downloader: remote.NewDownloader(client, logger),
		Executor:   executor.NewScriptExecutor(opts.Stderr, logger),
		Out:        opts.Stdout,
		IntN:       opts.IntN,
	}, logger)

	logger.Debug("Configuration loaded", "config_dir", cfg.ConfigDir, "wallpaper_dir", cfg.WallpaperDir)
	return nil
}

// GetFlags returns the flags every action shares
func (e *Env) GetFlags() []cli.Flag {
	v := validator.NewValidator()

	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "notify",
			Aliases: []string{"n"},
			Usage:   "Send a desktop notification instead of printing",
		},
		&cli.StringFlag{
			Name:      "config-dir",
			Value:     constants.DefaultConfigDir,
			TakesFile: true,
			Sources:   cli.EnvVars("RANDOMWALL_CONFIG_DIR"),
			Usage:     "Directory holding history, blacklist, favorites and config.json",
		},
		&cli.StringFlag{
			Name:      "wallpaper-dir",
			Aliases:   []string{"w"},
			TakesFile: true,
			Sources:   cli.EnvVars("RANDOMWALL_WALLPAPER_DIR"),
			Usage:     "Directory to pick wallpapers from (overrides wallpaper_dir)",
		},
		&cli.StringFlag{
			Name:      "script",
			TakesFile: true,
			Usage:     "Script to run with the applied wallpaper URI",
		},
		&cli.StringFlag{
			Name:      "notifier",
			Validator: v.ValidateNotifier,
			Usage:     "Notification backend: notify-send, dbus",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Sources: cli.EnvVars("RANDOMWALL_VERBOSE"),
			Usage:   "Enable debug logging",
		},
	}
}
