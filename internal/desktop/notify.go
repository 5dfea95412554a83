package desktop

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
	"git.asdf.cafe/abs3nt/randomwall/internal/interfaces"
)

// NotifySend sends notifications through the notify-send binary.
type NotifySend struct {
	run CommandRunner
}

// NewNotifySend creates a notify-send notifier
func NewNotifySend(run CommandRunner) *NotifySend {
	if run == nil {
		run = RunCommand
	}
	return &NotifySend{run: run}
}

func (n *NotifySend) Notify(ctx context.Context, title, message string) error {
	return n.run(ctx, "notify-send", "--app-name="+constants.AppName, title, message)
}

const (
	notificationsName  = "org.freedesktop.Notifications"
	notificationsPath  = "/org/freedesktop/Notifications"
	notificationsCall  = notificationsName + ".Notify"
	notificationExpiry = int32(5000)
)

// DBusNotifier calls org.freedesktop.Notifications on the session bus directly.
type DBusNotifier struct {
	connect func() (*dbus.Conn, error)
}

// NewDBusNotifier creates a notifier on the shared session bus
func NewDBusNotifier() *DBusNotifier {
	return &DBusNotifier{connect: dbus.SessionBus}
}

func (n *DBusNotifier) Notify(ctx context.Context, title, message string) error {
	conn, err := n.connect()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	obj := conn.Object(notificationsName, dbus.ObjectPath(notificationsPath))
	call := obj.CallWithContext(ctx, notificationsCall, 0,
		constants.AppName,
		uint32(0),
		"",
		title,
		message,
		[]string{},
		map[string]dbus.Variant{},
		notificationExpiry,
	)
	if call.Err != nil {
		return fmt.Errorf("notify over dbus: %w", call.Err)
	}
	return nil
}

// NewNotifier returns the notifier for the configured backend, falling back
// to notify-send for unknown names.
func NewNotifier(backend string, logger *slog.Logger) interfaces.Notifier {
	switch backend {
	case constants.NotifierDBus:
		return NewDBusNotifier()
	case constants.NotifierNotifySend:
		return NewNotifySend(nil)
	default:
		logger.Warn("Unknown notifier backend, using notify-send", "backend", backend)
		return NewNotifySend(nil)
	}
}
