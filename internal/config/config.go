// Package config provides configuration management for randomwall
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	apperrors "git.asdf.cafe/abs3nt/randomwall/internal/errors"
)

// Config holds application configuration
type Config struct {
	// Paths
	ConfigDir     string `json:"-" toml:"-"`
	WallpaperDir  string `json:"wallpaper_dir" toml:"wallpaper_dir"`
	HistoryFile   string `json:"-" toml:"-"`
	BlacklistFile string `json:"-" toml:"-"`
	FavoritesFile string `json:"-" toml:"-"`

	// Desktop integration
	Notifier   string `json:"notifier" toml:"notifier"`
	ScriptPath string `json:"script_path" toml:"script_path"`

	// Application settings
	LogLevel string `json:"log_level" toml:"log_level"`
}

// NewConfig creates a new configuration with defaults rooted at configDir
func NewConfig(configDir string) *Config {
	return &Config{
		ConfigDir:     configDir,
		WallpaperDir:  mustExpand(constants.DefaultWallpaperDir),
		HistoryFile:   filepath.Join(configDir, constants.HistoryFile),
		BlacklistFile: filepath.Join(configDir, constants.BlacklistFile),
		FavoritesFile: filepath.Join(configDir, constants.FavoritesFile),
		Notifier:      constants.DefaultNotifier,
		LogLevel:      constants.DefaultLogLevel,
	}
}

// Load creates the config directory if needed and overlays config.json (or,
// failing that, config.toml) on top of the defaults. A missing file is not an
// error.
func Load(configDir string) (*Config, error) {
	if strings.TrimSpace(configDir) == "" {
		configDir = constants.DefaultConfigDir
	}
	dir, err := ExpandPath(configDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	cfg := NewConfig(dir)

	var raw Config
	found, err := readFile(filepath.Join(dir, constants.ConfigFileJSON), json.Unmarshal, &raw)
	if err != nil {
		return nil, err
	}
	if !found {
		if _, err := readFile(filepath.Join(dir, constants.ConfigFileTOML), toml.Unmarshal, &raw); err != nil {
			return nil, err
		}
	}

	if v := strings.TrimSpace(raw.WallpaperDir); v != "" {
		cfg.WallpaperDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Notifier); v != "" {
		cfg.Notifier = v
	}
	if v := strings.TrimSpace(raw.ScriptPath); v != "" {
		cfg.ScriptPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

func readFile(path string, unmarshal func([]byte, any) error, out *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return false, nil
	}
	if err := unmarshal(data, out); err != nil {
		return true, fmt.Errorf("parse config %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validatePaths,
		c.validateNotifier,
		c.validateLogLevel,
	}

	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.WallpaperDir) == "" {
		return apperrors.NewValidationError("wallpaper_dir", c.WallpaperDir, "cannot be empty")
	}

	if c.ScriptPath != "" {
		if _, err := os.Stat(c.ScriptPath); errors.Is(err, fs.ErrNotExist) {
			return apperrors.NewValidationError("script_path", c.ScriptPath, "file does not exist")
		}
	}

	return nil
}

func (c *Config) validateNotifier() error {
	if slices.Contains(constants.ValidNotifiers, c.Notifier) {
		return nil
	}
	return apperrors.NewValidationError("notifier", c.Notifier, "must be one of: "+strings.Join(constants.ValidNotifiers, ", "))
}

func (c *Config) validateLogLevel() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return apperrors.NewValidationError("log_level", c.LogLevel, "must be one of: debug, info, warn, error")
	}
	return nil
}

// Level returns the slog level named by LogLevel, defaulting to warn.
func (c *Config) Level() slog.Level {
	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// ExpandPath expands a leading ~ and makes the path absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
