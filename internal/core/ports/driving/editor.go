package driving

import (
	"context"
	"time"

	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
)

// Editor drives the table editor widget: it owns the single EditorState
// and applies every user event through the domain reducer.
type Editor interface {
	// State returns the current editor state.
	State() domain.EditorState

	// Load performs the one-time initial load from the host client.
	// It does nothing before the host signals readiness. The returned
	// error is for logging only; the state always reflects the outcome.
	Load(ctx context.Context) (domain.EditorState, error)

	// Paste normalizes pasted text into the current document.
	Paste(text string) domain.EditorState

	// Clear discards the current document and text.
	Clear() domain.EditorState

	// Save serializes the current document (nil persists an empty
	// string) through the host client. It is a no-op unless the state
	// allows saving.
	Save(ctx context.Context) (domain.EditorState, error)

	// CloseHost instructs the host to dismiss the view. Callers invoke
	// it after CloseDelay has elapsed following a successful save.
	CloseHost(ctx context.Context) error

	// CloseDelay is the pause between a successful save and CloseHost.
	CloseDelay() time.Duration
}
