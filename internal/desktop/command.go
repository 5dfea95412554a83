// Package desktop talks to the desktop environment: background, notifications
// and the terminal confirmation prompt.
package desktop

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner runs an external program to completion.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// RunCommand is the CommandRunner backed by os/exec.
func RunCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%s: %w", name, err)
		}
		return fmt.Errorf("%s: %w: %s", name, err, msg)
	}
	return nil
}
