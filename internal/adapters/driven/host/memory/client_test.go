package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := NewClient()

	require.True(t, client.Initialized())

	value, err := client.GetValue(ctx)
	require.NoError(t, err)
	assert.Empty(t, value, "no prior value")

	require.NoError(t, client.SetValue(ctx, `{"data":[["a"]]}`, true))

	value, err = client.GetValue(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"data":[["a"]]}`, value)

	calls := client.SetCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Flush)
}

func TestClient_InitializedGate(t *testing.T) {
	client := NewClient()
	client.SetInitialized(false)
	assert.False(t, client.Initialized())
}

func TestClient_ScriptedErrors(t *testing.T) {
	ctx := context.Background()
	client := NewClientWithValue("stored")

	client.GetErr = errors.New("get boom")
	_, err := client.GetValue(ctx)
	assert.EqualError(t, err, "get boom")

	client.SetErr = errors.New("set boom")
	err = client.SetValue(ctx, "x", false)
	assert.EqualError(t, err, "set boom")
	assert.Empty(t, client.SetCalls())
}

func TestClient_CloseApp(t *testing.T) {
	ctx := context.Background()
	client := NewClient()

	require.NoError(t, client.CloseApp(ctx))
	assert.True(t, client.Closed())
}
