package validator

import (
	"testing"

	"git.asdf.cafe/abs3nt/randomwall/internal/constants"
)

func TestValidator_ValidateSource(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid bing", constants.SourceBing, false},
		{"valid desktoppr", constants.SourceDesktoppr, false},
		{"invalid value", "unsplash", true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSource(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSource() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_ValidateNotifier(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid notify-send", constants.NotifierNotifySend, false},
		{"valid dbus", constants.NotifierDBus, false},
		{"invalid value", "growl", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateNotifier(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotifier() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_ValidateURL(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid http", "http://x/test.png", false},
		{"valid https with query", "https://example.com/a/b.jpg?dl=1", false},
		{"local path", "/home/me/a.jpg", true},
		{"ftp scheme", "ftp://x/a.jpg", true},
		{"no file", "https://example.com/", true},
		{"no path", "https://example.com", true},
		{"no host", "http:///a.jpg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateURL(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := v.ValidateURLs([]string{"http://x/a.png", "nope"}); err == nil {
		t.Error("Expected ValidateURLs to reject the second entry")
	}
}
