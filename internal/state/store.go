// Package state reads and appends the line-oriented history, blacklist and
// favorites files.
package state

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"git.asdf.cafe/abs3nt/randomwall/internal/config"
	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
)

// RemoveResult reports the outcome of a best-effort removal.
type RemoveResult int

const (
	Removed RemoveResult = iota
	AlreadyAbsent
	RemoveFailed
)

func (r RemoveResult) String() string {
	switch r {
	case Removed:
		return "removed"
	case AlreadyAbsent:
		return "already absent"
	default:
		return "failed"
	}
}

// IsURL reports whether an entry refers to a remote wallpaper.
func IsURL(entry string) bool {
	return strings.HasPrefix(entry, "http")
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadList returns the live entries of a state file. A missing or unreadable
// file yields an empty list. Entries that are neither an existing path nor a
// URL are dropped; the file itself is not rewritten.
func ReadList(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if IsURL(line) || (line != "" && exists(line)) {
			entries = append(entries, line)
		}
	}
	if scanner.Err() != nil {
		return nil
	}
	return entries
}

// Append writes entry plus a newline to the end of path, creating it if needed.
func Append(path, entry string) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(entry + "\n"); err != nil {
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return nil
}

// Remove deletes path. A file that is already gone is not an error.
func Remove(path string) (RemoveResult, error) {
	err := os.Remove(path)
	switch {
	case err == nil:
		return Removed, nil
	case errors.Is(err, fs.ErrNotExist):
		return AlreadyAbsent, nil
	default:
		return RemoveFailed, err
	}
}

// Store gives named access to the three state files.
type Store struct {
	historyFile   string
	blacklistFile string
	favoritesFile string
	logger        *slog.Logger
}

// NewStore creates a store over the state files named in cfg
func NewStore(cfg *config.Config, logger *slog.Logger) *Store {
	return &Store{
		historyFile:   cfg.HistoryFile,
		blacklistFile: cfg.BlacklistFile,
		favoritesFile: cfg.FavoritesFile,
		logger:        logger,
	}
}

func (s *Store) History() []string   { return ReadList(s.historyFile) }
func (s *Store) Blacklist() []string { return ReadList(s.blacklistFile) }
func (s *Store) Favorites() []string { return ReadList(s.favoritesFile) }

// Current returns the last live history entry.
func (s *Store) Current() (string, bool) {
	history := s.History()
	if len(history) == 0 {
		return "", false
	}
	return history[len(history)-1], true
}

// IsFavorite reports whether wallpaper is listed in favorites.
func (s *Store) IsFavorite(wallpaper string) bool {
	return slices.Contains(s.Favorites(), wallpaper)
}

func (s *Store) AddHistory(wallpaper string) error   { return Append(s.historyFile, wallpaper) }
func (s *Store) AddBlacklist(wallpaper string) error { return Append(s.blacklistFile, wallpaper) }
func (s *Store) AddFavorite(wallpaper string) error  { return Append(s.favoritesFile, wallpaper) }

// ClearHistory deletes the history file.
func (s *Store) ClearHistory() RemoveResult {
	return s.clear(s.historyFile)
}

// ClearBlacklist deletes the blacklist file.
func (s *Store) ClearBlacklist() RemoveResult {
	return s.clear(s.blacklistFile)
}

func (s *Store) clear(path string) RemoveResult {
	result, err := Remove(path)
	if err != nil {
		s.logger.Warn("Failed to clear state file", "path", path, "error", err)
		return result
	}
	s.logger.Debug("Cleared state file", "path", path, "result", result.String())
	return result
}

// RemoveWallpaper deletes an image file, logging rather than returning failures.
func (s *Store) RemoveWallpaper(path string) RemoveResult {
	result, err := Remove(path)
	if err != nil {
		s.logger.Warn("Failed to remove wallpaper file", "path", path, "error", err)
		return result
	}
	s.logger.Info("Removed wallpaper file", "path", path, "result", result.String())
	return result
}
