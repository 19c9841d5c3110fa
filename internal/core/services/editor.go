package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driven"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driving"
	"github.com/gridpad-labs/gridpad-cli/internal/logger"
)

// Ensure EditorService implements the interface.
var _ driving.Editor = (*EditorService)(nil)

// EditorService owns the single editor state and mediates between the
// normalizer and the injected host client. All state changes go through
// the domain reducer; the mutex only guards the state value itself, as
// callers are expected to drive the service from one event loop.
type EditorService struct {
	mu         sync.Mutex
	host       driven.HostClient
	normalizer driving.Normalizer
	closeDelay time.Duration
	state      domain.EditorState
}

// EditorOption configures an EditorService.
type EditorOption func(*EditorService)

// WithCloseDelay overrides the post-save close delay.
func WithCloseDelay(d time.Duration) EditorOption {
	return func(s *EditorService) {
		if d > 0 {
			s.closeDelay = d
		}
	}
}

// NewEditorService creates an editor service. The host client may be nil,
// in which case loads are skipped and saves fail with ErrHostUnavailable.
func NewEditorService(host driven.HostClient, normalizer driving.Normalizer, opts ...EditorOption) *EditorService {
	s := &EditorService{
		host:       host,
		normalizer: normalizer,
		closeDelay: domain.DefaultCloseDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current editor state.
func (s *EditorService) State() domain.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load performs the initial load from the host client. No interaction
// happens before the host signals readiness. Failures are non-fatal:
// they are logged and leave the view in its empty initial state.
func (s *EditorService) Load(ctx context.Context) (domain.EditorState, error) {
	if s.host == nil || !s.host.Initialized() {
		return s.State(), nil
	}

	raw, err := s.host.GetValue(ctx)
	if err != nil {
		logger.Warn("load from host failed: %v", err)
		return s.reduce(domain.LoadFailed{}), nil
	}

	if raw == "" {
		// No prior data is an acceptable outcome.
		return s.reduce(domain.LoadSucceeded{}), nil
	}

	doc, text, err := s.normalizer.Load(raw)
	if err != nil {
		logger.Warn("stored value unusable: %v", err)
		return s.reduce(domain.LoadFailed{}), nil
	}

	return s.reduce(domain.LoadSucceeded{Document: doc, Text: text}), nil
}

// Paste normalizes pasted text into the current document. Blank input is
// a valid empty state; parse failures clear the document and surface a
// message.
func (s *EditorService) Paste(text string) domain.EditorState {
	doc, canonical, err := s.normalizer.NormalizeInput(text)
	if err != nil {
		return s.reduce(domain.PasteFailed{Message: err.Error()})
	}
	if doc == nil {
		return s.reduce(domain.Cleared{})
	}
	return s.reduce(domain.PasteApplied{Document: doc, Text: canonical})
}

// Clear discards the current document and text.
func (s *EditorService) Clear() domain.EditorState {
	return s.reduce(domain.Cleared{})
}

// Save persists the serialized document through the host client. Saving
// with no document persists an empty string and still clears the pending
// flag. A failed save resets the saving flag and keeps pending changes
// so the user may retry.
func (s *EditorService) Save(ctx context.Context) (domain.EditorState, error) {
	s.mu.Lock()
	if !s.state.CanSave() {
		state := s.state
		s.mu.Unlock()
		return state, nil
	}
	text := s.normalizer.Serialize(s.state.Document)
	s.mu.Unlock()

	if s.host == nil || !s.host.Initialized() {
		state := s.reduce(domain.SaveFailed{Message: domain.ErrHostUnavailable.Error()})
		return state, domain.ErrHostUnavailable
	}

	s.reduce(domain.SaveStarted{})

	if err := s.host.SetValue(ctx, text, true); err != nil {
		wrapped := fmt.Errorf("%w: %v", domain.ErrSave, err)
		state := s.reduce(domain.SaveFailed{Message: wrapped.Error()})
		return state, wrapped
	}

	return s.reduce(domain.SaveSucceeded{}), nil
}

// CloseHost instructs the host to dismiss the view.
func (s *EditorService) CloseHost(ctx context.Context) error {
	if s.host == nil {
		return domain.ErrHostUnavailable
	}
	return s.host.CloseApp(ctx)
}

// CloseDelay is the pause between a successful save and CloseHost.
func (s *EditorService) CloseDelay() time.Duration {
	return s.closeDelay
}

// reduce applies an event under the lock and returns the next state.
func (s *EditorService) reduce(e domain.EditorEvent) domain.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.Reduce(s.state, e)
	return s.state
}
