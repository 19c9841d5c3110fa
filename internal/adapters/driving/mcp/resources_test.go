package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpad-labs/gridpad-cli/internal/adapters/driven/host/memory"
	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
	"github.com/gridpad-labs/gridpad-cli/internal/core/services"
)

func TestExtractRevisionID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid revision URI",
			uri:      "gridpad://revisions/rev-123",
			expected: "rev-123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://revisions/rev-123",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractRevisionID(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleCurrentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored value", func(t *testing.T) {
		host := memory.NewClientWithValue(`{"data": [["x"]]}`)
		server := newTestServer(t, host)

		req := makeReadResourceRequest("gridpad://current")
		result, err := server.handleCurrentResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, `{"data": [["x"]]}`, result.Contents[0].Text)
	})

	t.Run("nil host returns not found", func(t *testing.T) {
		server := newTestServer(t, nil)

		req := makeReadResourceRequest("gridpad://current")
		_, err := server.handleCurrentResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("returns error on read failure", func(t *testing.T) {
		host := memory.NewClient()
		host.GetErr = assert.AnError
		server := newTestServer(t, host)

		req := makeReadResourceRequest("gridpad://current")
		_, err := server.handleCurrentResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading stored value")
	})
}

func TestServer_handleRevisionsResource(t *testing.T) {
	ctx := context.Background()

	newServerWithRevisions := func(t *testing.T, store *mockRevisionStore) *Server {
		t.Helper()
		server, err := NewServer(&Ports{
			Normalizer: services.NewNormalizer(),
			Revisions:  store,
		})
		require.NoError(t, err)
		return server
	}

	t.Run("lists revisions", func(t *testing.T) {
		store := &mockRevisionStore{revisions: []domain.Revision{
			{ID: "rev-1", Text: `{"data": [["a"]]}`, SavedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)},
		}}
		server := newServerWithRevisions(t, store)

		req := makeReadResourceRequest("gridpad://revisions")
		result, err := server.handleRevisionsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "rev-1")
		assert.Contains(t, result.Contents[0].Text, "2026-08-24T12:00:00Z")
		assert.NotContains(t, result.Contents[0].Text, `"data"`, "payloads stay out of the listing")
	})

	t.Run("nil revision store returns not found", func(t *testing.T) {
		server := newTestServer(t, nil)

		req := makeReadResourceRequest("gridpad://revisions")
		_, err := server.handleRevisionsResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("returns revision text", func(t *testing.T) {
		store := &mockRevisionStore{revisions: []domain.Revision{
			{ID: "rev-1", Text: `{"data": [["a"]]}`, SavedAt: time.Now()},
		}}
		server := newServerWithRevisions(t, store)

		req := makeReadResourceRequest("gridpad://revisions/rev-1")
		result, err := server.handleRevisionResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, `{"data": [["a"]]}`, result.Contents[0].Text)
	})

	t.Run("unknown revision returns error", func(t *testing.T) {
		server := newServerWithRevisions(t, &mockRevisionStore{})

		req := makeReadResourceRequest("gridpad://revisions/nope")
		_, err := server.handleRevisionResource(ctx, req)

		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
