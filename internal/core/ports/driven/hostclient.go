package driven

import "context"

// HostClient is the boundary to the application shell embedding the
// widget. It owns the persisted textual representation of the document;
// the widget performs no load/save interaction before Initialized
// reports true.
type HostClient interface {
	// Initialized reports whether the host is ready for value exchange.
	Initialized() bool

	// GetValue returns the previously persisted serialized document
	// text. An empty string means no prior value.
	GetValue(ctx context.Context) (string, error)

	// SetValue persists serialized text. The flush flag's exact effect
	// is defined by the host, not by the widget.
	SetValue(ctx context.Context, text string, flush bool) error

	// CloseApp instructs the host to dismiss the widget view.
	CloseApp(ctx context.Context) error
}

// ValueWatcher is implemented by host clients that can signal external
// changes to the persisted value. The widget reloads on a signal only
// while it has no pending changes.
type ValueWatcher interface {
	// Watch returns a channel that receives a token whenever the
	// persisted value changes outside the widget. The channel is closed
	// when the context is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
