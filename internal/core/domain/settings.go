package domain

import "time"

// Host backend identifiers.
const (
	// BackendFile persists the value to a plain file.
	BackendFile = "file"

	// BackendSQLite persists the value to a SQLite database with
	// revision history.
	BackendSQLite = "sqlite"
)

// DefaultCloseDelay is how long the widget waits after a successful save
// before instructing the host to dismiss the view.
const DefaultCloseDelay = 500 * time.Millisecond

// AppSettings holds user-facing application settings.
type AppSettings struct {
	// Backend selects the host client implementation.
	Backend string `toml:"backend"`

	// DataDir is where the selected backend keeps its files.
	// Empty means the default under the user's home directory.
	DataDir string `toml:"data_dir"`

	// CloseDelayMS overrides the post-save close delay in milliseconds.
	// Zero means DefaultCloseDelay.
	CloseDelayMS int `toml:"close_delay_ms"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() AppSettings {
	return AppSettings{
		Backend: BackendFile,
	}
}

// CloseDelay returns the configured close delay.
func (s AppSettings) CloseDelay() time.Duration {
	if s.CloseDelayMS <= 0 {
		return DefaultCloseDelay
	}
	return time.Duration(s.CloseDelayMS) * time.Millisecond
}
