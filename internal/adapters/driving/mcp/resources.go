package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for gridpad resources.
const uriScheme = "gridpad://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the current stored value.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "current",
		Name:        "current-table",
		Description: "The stored table value in its normalized JSON form",
		MIMEType:    "application/json",
	}, s.handleCurrentResource)

	// Static resource for listing revisions.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "revisions",
		Name:        "revisions",
		Description: "Saved revisions of the stored table value, newest first",
		MIMEType:    "application/json",
	}, s.handleRevisionsResource)

	// Template for a single revision.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "revisions/{revisionId}",
		Name:        "revision",
		Description: "The stored table value at a specific revision",
		MIMEType:    "application/json",
	}, s.handleRevisionResource)
}

// handleCurrentResource returns the stored table value.
func (s *Server) handleCurrentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Host == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	value, err := s.ports.Host.GetValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading stored value: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     value,
		}},
	}, nil
}

// handleRevisionsResource returns the list of saved revisions.
func (s *Server) handleRevisionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Revisions == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	revisions, err := s.ports.Revisions.ListRevisions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing revisions: %w", err)
	}

	// Build revision list without the text payloads.
	type revisionInfo struct {
		ID      string `json:"id"`
		SavedAt string `json:"saved_at"`
	}

	infos := make([]revisionInfo, len(revisions))
	for i := range revisions {
		infos[i] = revisionInfo{
			ID:      revisions[i].ID,
			SavedAt: revisions[i].SavedAt.Format(time.RFC3339),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling revisions: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRevisionResource returns the stored value at a specific revision.
func (s *Server) handleRevisionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Revisions == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	revisionID := extractRevisionID(req.Params.URI)
	if revisionID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	revision, err := s.ports.Revisions.GetRevision(ctx, revisionID)
	if err != nil {
		return nil, fmt.Errorf("getting revision: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     revision.Text,
		}},
	}, nil
}

// extractRevisionID extracts the revision ID from a URI like gridpad://revisions/{revisionId}.
func extractRevisionID(uri string) string {
	const prefix = uriScheme + "revisions/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
