package driven

import "github.com/gridpad-labs/gridpad-cli/internal/core/domain"

// SettingsStore persists application settings.
type SettingsStore interface {
	// Settings returns the current settings.
	Settings() domain.AppSettings

	// SetSettings replaces the current settings.
	SetSettings(settings domain.AppSettings)

	// Save persists the current settings.
	Save() error

	// Load reads settings from storage.
	Load() error

	// Path returns the backing location, for display.
	Path() string
}
