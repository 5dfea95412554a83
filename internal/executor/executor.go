// Package executor provides script execution functionality
package executor

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"git.asdf.cafe/abs3nt/randomwall/internal/errors"
)

// ScriptExecutor runs the user's post-apply hook
type ScriptExecutor struct {
	out    io.Writer
	logger *slog.Logger
}

// NewScriptExecutor creates a new script executor. The script's output goes
// to out, which defaults to standard error: standard output carries only the
// wallpaper line.
func NewScriptExecutor(out io.Writer, logger *slog.Logger) *ScriptExecutor {
	if out == nil {
		out = os.Stderr
	}
	return &ScriptExecutor{
		out:    out,
		logger: logger,
	}
}

// Execute runs a script with the applied wallpaper URI as its only argument
func (s *ScriptExecutor) Execute(ctx context.Context, scriptPath, uri string) error {
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return errors.NewValidationError("script_path", scriptPath, "file does not exist")
	}

	s.logger.Info("Executing script", "script", scriptPath, "uri", uri)

	cmd := exec.CommandContext(ctx, scriptPath, uri)
	cmd.Stdout = s.out
	cmd.Stderr = s.out

	if err := cmd.Run(); err != nil {
		s.logger.Error("Script execution failed", "error", err, "script", scriptPath)
		return err
	}

	s.logger.Info("Script executed successfully", "script", scriptPath)
	return nil
}
