// Package interfaces defines interfaces for dependency injection
package interfaces

import "context"

// BackgroundSetter applies a file:// or remote URI as the desktop and
// lock-screen background.
type BackgroundSetter interface {
	SetBackground(ctx context.Context, uri string) error
}

// Notifier emits a desktop notification.
type Notifier interface {
	Notify(ctx context.Context, title, message string) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Source returns the URL of a wallpaper from a remote API.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (string, error)
}

// Downloader copies the body of a URL into a directory and returns the
// local path it wrote.
type Downloader interface {
	Download(ctx context.Context, rawURL, dir string) (string, error)
}

// ScriptExecutor defines the interface for script execution
type ScriptExecutor interface {
	Execute(ctx context.Context, scriptPath, uri string) error
}

// Validator defines the interface for input validation
type Validator interface {
	ValidateSource(value string) error
	ValidateNotifier(value string) error
	ValidateURL(value string) error
	ValidateURLs(values []string) error
}
