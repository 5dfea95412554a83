// Package constants defines application constants
package constants

// Recognized wallpaper extensions. Matching is case-sensitive, so both
// spellings are globbed.
var Extensions = []string{
	"JPEG", "JPG", "PNG", "SVG",
	"jpeg", "jpg", "png", "svg",
}

// Remote source names
const (
	SourceDesktoppr = "desktoppr"
	SourceBing      = "bing"
)

// Valid remote sources
var ValidSources = []string{SourceDesktoppr, SourceBing}

// Notifier backends
const (
	NotifierNotifySend = "notify-send"
	NotifierDBus       = "dbus"
)

// Valid notifier backends
var ValidNotifiers = []string{NotifierNotifySend, NotifierDBus}

// State file names inside the config directory
const (
	HistoryFile    = "history"
	BlacklistFile  = "blacklist"
	FavoritesFile  = "favorites"
	ConfigFileJSON = "config.json"
	ConfigFileTOML = "config.toml"
)

// Default values
const (
	DefaultConfigDir    = "~/.randomwall"
	DefaultWallpaperDir = "~/Pictures/Wallpapers"
	DefaultNotifier     = NotifierNotifySend
	DefaultLogLevel     = "warn"
)

// Application constants
const (
	AppName         = "randomwall"
	AppVersion      = "1.0.0"
	UserAgent       = "randomwall/1.0"
	NotifyTitle     = "Random wallpaper"
	NotFoundTitle   = "Wallpaper not found"
	NoWallpaperText = "No wallpaper selected."
)

// HTTP constants
const (
	RequestTimeout      = 30 // seconds
	MaxIdleConns        = 10
	MaxIdleConnsPerHost = 2
	IdleConnTimeout     = 30 // seconds
)

// Remote endpoints
const (
	BingBaseURL      = "http://www.bing.com"
	BingImageHost    = "https://www.bing.com"
	BingResolution   = "_1920x1080.jpg"
	DesktopprBaseURL = "https://api.desktoppr.co"
)

// File permission constants
const (
	DirPermissions  = 0o755
	FilePermissions = 0o644
)
