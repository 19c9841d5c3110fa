package tui

import "errors"

// Sentinel errors for port validation.
var (
	// ErrMissingEditor indicates the editor service port was not set.
	ErrMissingEditor = errors.New("editor service is required")
)
