// Package tui provides the interactive terminal widget for gridpad.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driven"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Editor manages the paste/normalize/save lifecycle.
	Editor driving.Editor

	// Watcher signals external changes to the stored value.
	// Optional; when nil the editor never reloads on its own.
	Watcher driven.ValueWatcher
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(editor driving.Editor, watcher driven.ValueWatcher) *Ports {
	return &Ports{
		Editor:  editor,
		Watcher: watcher,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Editor == nil {
		return ErrMissingEditor
	}
	return nil
}
