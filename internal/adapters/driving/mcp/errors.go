// Package mcp provides an MCP (Model Context Protocol) server adapter for gridpad.
// It lets AI assistants normalize pasted tabular text and read the stored table.
package mcp

import "errors"

// ErrMissingNormalizer is returned when the normalizer service is not provided.
var ErrMissingNormalizer = errors.New("mcp: normalizer service is required")
