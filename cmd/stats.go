package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/rotator"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Width(22)
)

// StatsHandler handles the --stats action
type StatsHandler struct {
	env *Env
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(env *Env) *StatsHandler {
	return &StatsHandler{env: env}
}

// Handle prints a summary of the wallpaper directory and state files
func (h *StatsHandler) Handle(ctx context.Context, c *cli.Command) error {
	fmt.Fprint(h.env.Stdout, renderStats(h.env.Rotator.Stats()))
	return nil
}

func renderStats(s rotator.Stats) string {
	current := s.Current
	if current == "" {
		current = constants.NoWallpaperText
	}

	var b strings.Builder
	section := func(title string, rows [][2]string) {
		b.WriteString(headingStyle.Render(title))
		b.WriteString("\n")
		for _, row := range rows {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(row[0]))
			b.WriteString(row[1])
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	section("Collection", [][2]string{
		{"Directory:", s.WallpaperDir},
		{"Wallpapers:", humanize.Comma(int64(s.Candidates))},
		{"Storage used:", humanize.Bytes(s.TotalBytes)},
	})
	section("State", [][2]string{
		{"History entries:", humanize.Comma(int64(s.History))},
		{"Blacklisted:", humanize.Comma(int64(s.Blacklist))},
		{"Favorites:", humanize.Comma(int64(s.Favorites))},
		{"Current wallpaper:", current},
	})
	return b.String()
}

// GetFlags returns the CLI flags for stats
func (h *StatsHandler) GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "Show wallpaper and state file statistics",
		},
	}
}
