package driven

import (
	"context"

	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
)

// RevisionStore lists historical snapshots of the persisted value.
// Implemented by host backends that keep save history.
type RevisionStore interface {
	// ListRevisions returns revisions newest first.
	ListRevisions(ctx context.Context) ([]domain.Revision, error)

	// GetRevision retrieves a revision by ID.
	GetRevision(ctx context.Context, id string) (*domain.Revision, error)
}
