package mcp

import (
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driven"
	"github.com/gridpad-labs/gridpad-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Normalizer parses and canonicalizes tabular text.
	Normalizer driving.Normalizer

	// Host reads and writes the stored table value.
	// Optional; without it the store tool and resources are unavailable.
	Host driven.HostClient

	// Revisions lists saved revisions of the stored value.
	// Optional; only the sqlite backend provides it.
	Revisions driven.RevisionStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Normalizer == nil {
		return ErrMissingNormalizer
	}
	// Host and Revisions are optional
	return nil
}
