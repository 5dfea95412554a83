package desktop

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	name string
	args []string
}

type recorder struct {
	calls []recordedCall
	fail  map[string]error
}

func (r *recorder) run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, recordedCall{name: name, args: args})
	if r.fail != nil {
		return r.fail[strings.Join(args, " ")]
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGSettingsSetter_SetsDesktopAndLockScreen(t *testing.T) {
	rec := &recorder{}
	setter := NewGSettingsSetter(rec.run, discard())

	require.NoError(t, setter.SetBackground(context.Background(), "file:///walls/a.jpg"))

	require.Len(t, rec.calls, 3)
	assert.Equal(t, "gsettings", rec.calls[0].name)
	assert.Equal(t, []string{"set", "org.gnome.desktop.background", "picture-uri", "file:///walls/a.jpg"}, rec.calls[0].args)
	assert.Equal(t, []string{"set", "org.gnome.desktop.screensaver", "picture-uri", "file:///walls/a.jpg"}, rec.calls[2].args)
}

func TestGSettingsSetter_ContinuesAfterFailure(t *testing.T) {
	boom := stderrors.New("no such key")
	rec := &recorder{fail: map[string]error{
		"set org.gnome.desktop.background picture-uri-dark https://x/y.jpg": boom,
	}}
	setter := NewGSettingsSetter(rec.run, discard())

	err := setter.SetBackground(context.Background(), "https://x/y.jpg")
	assert.ErrorIs(t, err, boom)
	assert.Len(t, rec.calls, 3)
}

func TestNotifySend(t *testing.T) {
	rec := &recorder{}
	n := NewNotifySend(rec.run)

	require.NoError(t, n.Notify(context.Background(), "Random wallpaper", "a.jpg"))
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "notify-send", rec.calls[0].name)
	assert.Equal(t, []string{"--app-name=randomwall", "Random wallpaper", "a.jpg"}, rec.calls[0].args)
}

func TestNewNotifier_Backends(t *testing.T) {
	assert.IsType(t, &DBusNotifier{}, NewNotifier("dbus", discard()))
	assert.IsType(t, &NotifySend{}, NewNotifier("notify-send", discard()))
	assert.IsType(t, &NotifySend{}, NewNotifier("growl", discard()))
}

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"  y  \n", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			c := NewPromptConfirmer(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.want, c.Confirm("Sure (Y/N)? "))
			assert.Equal(t, "Sure (Y/N)? ", out.String())
		})
	}
}
