package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
	"github.com/gridpad-labs/gridpad-cli/internal/render"
)

// NormalizeInput is the input schema for the normalize_table tool.
type NormalizeInput struct {
	Text string `json:"text" jsonschema:"tabular text to normalize: tab- or comma-separated rows, or the stored JSON form"`
}

// NormalizeOutput is the output schema for the normalize_table tool.
type NormalizeOutput struct {
	Data        [][]string `json:"data"`
	RowCount    int        `json:"row_count"`
	ColumnCount int        `json:"column_count"`
	Canonical   string     `json:"canonical"`
}

// RenderInput is the input schema for the render_table tool.
type RenderInput struct {
	Text   string `json:"text" jsonschema:"tabular text to normalize and render"`
	Format string `json:"format,omitempty" jsonschema:"output format: html or text (default html)"`
}

// RenderOutput is the output schema for the render_table tool.
type RenderOutput struct {
	Rendered string `json:"rendered"`
	Format   string `json:"format"`
}

// SaveInput is the input schema for the save_table tool.
type SaveInput struct {
	Text string `json:"text" jsonschema:"tabular text to normalize and persist as the stored value"`
}

// SaveOutput is the output schema for the save_table tool.
type SaveOutput struct {
	Saved       bool `json:"saved"`
	RowCount    int  `json:"row_count"`
	ColumnCount int  `json:"column_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalize_table",
		Description: "Normalize pasted tabular text into canonical table JSON",
	}, s.handleNormalize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_table",
		Description: "Normalize tabular text and render it as an HTML or plain-text table",
	}, s.handleRender)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_table",
		Description: "Normalize tabular text and persist it as the stored table value",
	}, s.handleSave)
}

// handleNormalize handles the normalize_table tool invocation.
func (s *Server) handleNormalize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormalizeInput,
) (*mcp.CallToolResult, NormalizeOutput, error) {
	doc, canonical, err := s.ports.Normalizer.NormalizeInput(input.Text)
	if err != nil {
		return nil, NormalizeOutput{}, err
	}
	if doc == nil {
		return nil, NormalizeOutput{Data: [][]string{}}, nil
	}

	return nil, NormalizeOutput{
		Data:        doc.Rows,
		RowCount:    doc.RowCount(),
		ColumnCount: doc.ColumnCount(),
		Canonical:   canonical,
	}, nil
}

// handleRender handles the render_table tool invocation.
func (s *Server) handleRender(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RenderInput,
) (*mcp.CallToolResult, RenderOutput, error) {
	doc, _, err := s.ports.Normalizer.NormalizeInput(input.Text)
	if err != nil {
		return nil, RenderOutput{}, err
	}

	format := input.Format
	if format == "" {
		format = "html"
	}

	var rendered string
	switch format {
	case "html":
		rendered = render.HTML(doc)
	case "text":
		if doc != nil {
			rendered = render.Text(doc.Rows)
		}
	default:
		return nil, RenderOutput{}, fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, format)
	}

	return nil, RenderOutput{Rendered: rendered, Format: format}, nil
}

// handleSave handles the save_table tool invocation.
func (s *Server) handleSave(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveInput,
) (*mcp.CallToolResult, SaveOutput, error) {
	if s.ports.Host == nil || !s.ports.Host.Initialized() {
		return nil, SaveOutput{}, domain.ErrHostUnavailable
	}

	doc, _, err := s.ports.Normalizer.NormalizeInput(input.Text)
	if err != nil {
		return nil, SaveOutput{}, err
	}

	serialized := s.ports.Normalizer.Serialize(doc)
	if err := s.ports.Host.SetValue(ctx, serialized, true); err != nil {
		return nil, SaveOutput{}, fmt.Errorf("%w: %v", domain.ErrSave, err)
	}

	return nil, SaveOutput{
		Saved:       true,
		RowCount:    doc.RowCount(),
		ColumnCount: doc.ColumnCount(),
	}, nil
}
