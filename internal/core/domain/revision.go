package domain

import "time"

// Revision is a historical snapshot of the persisted value, recorded by
// host backends that keep save history.
type Revision struct {
	// ID is the unique identifier for the revision.
	ID string

	// Text is the serialized document text as it was persisted.
	Text string

	// SavedAt is when the revision was recorded.
	SavedAt time.Time
}
