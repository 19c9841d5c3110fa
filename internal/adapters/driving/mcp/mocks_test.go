package mcp

import (
	"context"

	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
)

// mockRevisionStore is a test double for the revision store port.
type mockRevisionStore struct {
	revisions []domain.Revision
	err       error
}

func (m *mockRevisionStore) ListRevisions(_ context.Context) ([]domain.Revision, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.revisions, nil
}

func (m *mockRevisionStore) GetRevision(_ context.Context, id string) (*domain.Revision, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.revisions {
		if m.revisions[i].ID == id {
			return &m.revisions[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
