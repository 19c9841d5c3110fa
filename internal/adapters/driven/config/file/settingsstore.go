package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is a file-based implementation of driven.SettingsStore
// using TOML.
type SettingsStore struct {
	mu       sync.RWMutex
	filePath string
	settings domain.AppSettings
}

// NewSettingsStore creates a TOML-based settings store. If configDir is
// empty, defaults to ~/.gridpad/config.toml. A missing file yields the
// default settings.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".gridpad")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
		settings: domain.DefaultSettings(),
	}

	if err := s.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return s, nil
}

// Settings returns the current settings.
func (s *SettingsStore) Settings() domain.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the current settings.
func (s *SettingsStore) SetSettings(settings domain.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Save persists the current settings to the TOML file.
func (s *SettingsStore) Save() error {
	s.mu.RLock()
	raw, err := toml.Marshal(s.settings)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if err := os.WriteFile(s.filePath, raw, 0600); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Load reads settings from the TOML file. Unknown keys are ignored;
// missing keys keep their defaults.
func (s *SettingsStore) Load() error {
	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	settings := domain.DefaultSettings()
	if err := toml.Unmarshal(raw, &settings); err != nil {
		return fmt.Errorf("decoding settings: %w", err)
	}

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return nil
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
