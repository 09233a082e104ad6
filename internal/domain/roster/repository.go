package roster

import (
	"context"
	"time"
)

// AssignmentRepository persists generated rosters. ReplaceMonth must be
// atomic: either the whole month is swapped or the previous state survives.
type AssignmentRepository interface {
	ReplaceMonth(ctx context.Context, projectID string, year int, month time.Month, assignments []Assignment) error
	GetMonth(ctx context.Context, projectID string, year int, month time.Month) ([]Assignment, error)
}
