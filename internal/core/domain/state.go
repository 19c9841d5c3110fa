package domain

// EditorState is the complete state of the table editor widget. It is an
// immutable record: every mutation produces a new value through Reduce.
type EditorState struct {
	// Document is the current table document, nil when none is loaded.
	Document *TableDocument

	// Text is the authoritative textual representation shown in the
	// paste area. After a successful parse it holds the document's own
	// JSON rendering, not the original pasted text.
	Text string

	// ErrorMessage is the inline user-visible error, empty when none.
	ErrorMessage string

	// HasPendingChanges is true whenever the visible state diverges from
	// the last loaded or saved state. It gates the Save action.
	HasPendingChanges bool

	// IsSaving is true while a save is in flight.
	IsSaving bool

	// Loaded is true once the initial load has resolved, successfully
	// or not.
	Loaded bool
}

// EditorEvent is a discrete event applied to the editor state.
type EditorEvent interface {
	isEditorEvent()
}

// PasteApplied carries a successfully normalized document and its
// canonical text rendering.
type PasteApplied struct {
	Document *TableDocument
	Text     string
}

// PasteFailed carries the user-visible message for a failed paste.
// The document state is cleared; the user must re-paste.
type PasteFailed struct {
	Message string
}

// Cleared blanks the document and text. Issued by the Clear action and
// by pasting blank input, both of which are valid empty states.
type Cleared struct{}

// SaveStarted marks a save as in flight.
type SaveStarted struct{}

// SaveSucceeded marks the persisted state as current.
type SaveSucceeded struct{}

// SaveFailed carries the user-visible message for a failed save. Pending
// changes are retained so the user may retry manually.
type SaveFailed struct {
	Message string
}

// LoadSucceeded carries the document adopted from storage. A load never
// counts as a pending change.
type LoadSucceeded struct {
	Document *TableDocument
	Text     string
}

// LoadFailed marks the initial load as resolved without data. Load
// failures are logged, never shown; the empty initial state stands.
type LoadFailed struct{}

func (PasteApplied) isEditorEvent()  {}
func (PasteFailed) isEditorEvent()   {}
func (Cleared) isEditorEvent()       {}
func (SaveStarted) isEditorEvent()   {}
func (SaveSucceeded) isEditorEvent() {}
func (SaveFailed) isEditorEvent()    {}
func (LoadSucceeded) isEditorEvent() {}
func (LoadFailed) isEditorEvent()    {}

// Reduce applies an event to a state and returns the next state.
// It is a pure function: the input state is never mutated.
func Reduce(s EditorState, e EditorEvent) EditorState {
	switch e := e.(type) {
	case PasteApplied:
		s.Document = e.Document
		s.Text = e.Text
		s.ErrorMessage = ""
		s.HasPendingChanges = true

	case PasteFailed:
		s.Document = nil
		s.Text = ""
		s.ErrorMessage = e.Message
		s.HasPendingChanges = true

	case Cleared:
		s.Document = nil
		s.Text = ""
		s.ErrorMessage = ""
		s.HasPendingChanges = true

	case SaveStarted:
		s.IsSaving = true
		s.ErrorMessage = ""

	case SaveSucceeded:
		s.IsSaving = false
		s.HasPendingChanges = false

	case SaveFailed:
		s.IsSaving = false
		s.ErrorMessage = e.Message

	case LoadSucceeded:
		s.Document = e.Document
		s.Text = e.Text
		s.ErrorMessage = ""
		s.HasPendingChanges = false
		s.Loaded = true

	case LoadFailed:
		s.Loaded = true
	}

	return s
}

// CanSave reports whether the Save action is currently enabled.
func (s EditorState) CanSave() bool {
	return s.HasPendingChanges && !s.IsSaving
}
