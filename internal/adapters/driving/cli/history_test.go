package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
)

// runHistoryCmd executes the history command against the given store.
func runHistoryCmd(t *testing.T, store *mockRevisionStore, args ...string) (string, error) {
	t.Helper()

	oldStore := revisionStore
	if store != nil {
		revisionStore = store
	} else {
		revisionStore = nil
	}
	defer func() { revisionStore = oldStore }()

	historyLimit = 0 // flag values persist across executions

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"history"}, args...))
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestHistoryCmd_ListsRevisions(t *testing.T) {
	store := &mockRevisionStore{revisions: []domain.Revision{
		{ID: "rev-2", SavedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)},
		{ID: "rev-1", SavedAt: time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)},
	}}

	out, err := runHistoryCmd(t, store)

	require.NoError(t, err)
	assert.Contains(t, out, "rev-2")
	assert.Contains(t, out, "rev-1")
	assert.Contains(t, out, "2026-08-24T12:00:00Z")
}

func TestHistoryCmd_LimitFlag(t *testing.T) {
	store := &mockRevisionStore{revisions: []domain.Revision{
		{ID: "rev-2", SavedAt: time.Now()},
		{ID: "rev-1", SavedAt: time.Now()},
	}}

	out, err := runHistoryCmd(t, store, "--limit", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "rev-2")
	assert.NotContains(t, out, "rev-1")
}

func TestHistoryCmd_Empty(t *testing.T) {
	out, err := runHistoryCmd(t, &mockRevisionStore{})

	require.NoError(t, err)
	assert.Contains(t, out, "No revisions recorded.")
}

func TestHistoryCmd_NoStore(t *testing.T) {
	_, err := runHistoryCmd(t, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite backend")
}

func TestHistoryShowCmd_PrintsRevisionText(t *testing.T) {
	store := &mockRevisionStore{revisions: []domain.Revision{
		{ID: "rev-1", Text: `{"data": [["a"]]}`, SavedAt: time.Now()},
	}}

	out, err := runHistoryCmd(t, store, "show", "rev-1")

	require.NoError(t, err)
	assert.Contains(t, out, `{"data": [["a"]]}`)
}

func TestHistoryShowCmd_UnknownRevision(t *testing.T) {
	_, err := runHistoryCmd(t, &mockRevisionStore{}, "show", "nope")

	require.ErrorIs(t, err, domain.ErrNotFound)
}
