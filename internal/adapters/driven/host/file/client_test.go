package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, client)
	return client
}

func TestNewClient_CreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	client, err := NewClient(dataDir)
	require.NoError(t, err)

	assert.DirExists(t, dataDir)
	assert.True(t, client.Initialized())
	assert.Equal(t, filepath.Join(dataDir, "value.json"), client.Path())
}

func TestClient_GetValueWithNoPriorValue(t *testing.T) {
	client := setupTestClient(t)

	value, err := client.GetValue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := setupTestClient(t)

	require.NoError(t, client.SetValue(ctx, `{"data":[["a","b"]]}`, true))

	value, err := client.GetValue(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"data":[["a","b"]]}`, value)

	// Overwrite replaces the whole value.
	require.NoError(t, client.SetValue(ctx, "", false))
	value, err = client.GetValue(ctx)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestClient_SetValueLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	client := setupTestClient(t)

	require.NoError(t, client.SetValue(ctx, "v1", true))
	require.NoError(t, client.SetValue(ctx, "v2", true))

	entries, err := os.ReadDir(filepath.Dir(client.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "value.json", entries[0].Name())
}

func TestClient_CloseApp(t *testing.T) {
	client := setupTestClient(t)

	require.NoError(t, client.CloseApp(context.Background()))
	assert.False(t, client.Initialized())
}

func TestClient_WatchSignalsExternalChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := setupTestClient(t)
	require.NoError(t, client.SetValue(ctx, "initial", true))

	changes, err := client.Watch(ctx)
	require.NoError(t, err)

	// Simulate an external writer touching the value file directly.
	require.NoError(t, os.WriteFile(client.Path(), []byte("external"), 0600))

	select {
	case _, ok := <-changes:
		assert.True(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestClient_WatchClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := setupTestClient(t)

	changes, err := client.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel closes when the context is cancelled")
	case <-time.After(3 * time.Second):
		t.Fatal("expected the channel to close")
	}
}
