package substitute

import "context"

type Store interface {
	// FindActive returns the first active standby for the project in
	// registration order, or nil when none is registered.
	FindActive(ctx context.Context, projectID string) (*Substitute, error)
	// Upsert registers a standby keyed by (project, national id). A second
	// call with the same identity updates the record in place and returns
	// it; it never inserts a duplicate.
	Upsert(ctx context.Context, sub Substitute) (Substitute, error)
}
