// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the paste-and-normalize editor view.
	ViewEditor ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ValueLoaded carries the editor state after the stored value was loaded.
type ValueLoaded struct {
	State domain.EditorState
}

// InputNormalized carries the editor state after pasted input was
// normalized into a table document.
type InputNormalized struct {
	State domain.EditorState
}

// SaveFinished carries the editor state after a save attempt.
type SaveFinished struct {
	State domain.EditorState
	Err   error
}

// CloseTimerFired signals the post-save close delay has elapsed.
type CloseTimerFired struct{}

// HostClosed signals the host connection was asked to close.
type HostClosed struct {
	Err error
}

// ExternalChange signals the stored value changed outside the editor.
type ExternalChange struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
