package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce_PasteApplied(t *testing.T) {
	doc := &TableDocument{Rows: [][]string{{"a"}}}
	prev := EditorState{ErrorMessage: "stale error"}

	next := Reduce(prev, PasteApplied{Document: doc, Text: `{"data":[["a"]]}`})

	assert.Same(t, doc, next.Document)
	assert.Equal(t, `{"data":[["a"]]}`, next.Text)
	assert.Empty(t, next.ErrorMessage)
	assert.True(t, next.HasPendingChanges)
}

func TestReduce_PasteFailed(t *testing.T) {
	prev := EditorState{
		Document: &TableDocument{Rows: [][]string{{"a"}}},
		Text:     "old",
	}

	next := Reduce(prev, PasteFailed{Message: "no valid table data found"})

	assert.Nil(t, next.Document)
	assert.Empty(t, next.Text)
	assert.Equal(t, "no valid table data found", next.ErrorMessage)
	assert.True(t, next.HasPendingChanges)
}

func TestReduce_Cleared(t *testing.T) {
	prev := EditorState{
		Document:     &TableDocument{Rows: [][]string{{"a"}}},
		Text:         "old",
		ErrorMessage: "stale",
	}

	next := Reduce(prev, Cleared{})

	assert.Nil(t, next.Document)
	assert.Empty(t, next.Text)
	assert.Empty(t, next.ErrorMessage)
	assert.True(t, next.HasPendingChanges)
}

func TestReduce_SaveLifecycle(t *testing.T) {
	s := EditorState{HasPendingChanges: true}

	s = Reduce(s, SaveStarted{})
	assert.True(t, s.IsSaving)
	assert.False(t, s.CanSave())

	s = Reduce(s, SaveSucceeded{})
	assert.False(t, s.IsSaving)
	assert.False(t, s.HasPendingChanges)
	assert.False(t, s.CanSave())
}

func TestReduce_SaveFailedRetainsPendingChanges(t *testing.T) {
	s := EditorState{HasPendingChanges: true}
	s = Reduce(s, SaveStarted{})

	s = Reduce(s, SaveFailed{Message: "save failed: host client unavailable"})

	assert.False(t, s.IsSaving)
	assert.True(t, s.HasPendingChanges, "user must be able to retry manually")
	assert.Equal(t, "save failed: host client unavailable", s.ErrorMessage)
	assert.True(t, s.CanSave())
}

func TestReduce_LoadSucceededIsNotAPendingChange(t *testing.T) {
	doc := &TableDocument{Rows: [][]string{{"a"}}}

	next := Reduce(EditorState{}, LoadSucceeded{Document: doc, Text: "text"})

	assert.Same(t, doc, next.Document)
	assert.Equal(t, "text", next.Text)
	assert.False(t, next.HasPendingChanges)
	assert.True(t, next.Loaded)
}

func TestReduce_LoadFailedKeepsEmptyInitialState(t *testing.T) {
	next := Reduce(EditorState{}, LoadFailed{})

	assert.Nil(t, next.Document)
	assert.Empty(t, next.Text)
	assert.Empty(t, next.ErrorMessage, "load failures are logged, never shown")
	assert.False(t, next.HasPendingChanges)
	assert.True(t, next.Loaded)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	prev := EditorState{Text: "before", HasPendingChanges: false}

	_ = Reduce(prev, Cleared{})

	assert.Equal(t, "before", prev.Text)
	assert.False(t, prev.HasPendingChanges)
}

func TestEditorState_CanSave(t *testing.T) {
	tests := []struct {
		name    string
		state   EditorState
		canSave bool
	}{
		{"no pending changes", EditorState{}, false},
		{"pending changes", EditorState{HasPendingChanges: true}, true},
		{"save in flight", EditorState{HasPendingChanges: true, IsSaving: true}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.canSave, tc.state.CanSave())
		})
	}
}
