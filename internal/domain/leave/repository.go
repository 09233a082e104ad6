package leave

import (
	"context"
	"time"
)

// LeaveStore is the read-only port to recorded leave.
type LeaveStore interface {
	// GetLeave returns the leave recorded for the exact date, or nil when
	// none exists.
	GetLeave(ctx context.Context, employeeID string, date time.Time) (*LeaveRecord, error)
	// ListForMonth returns every leave record touching the month for the
	// project's employees.
	ListForMonth(ctx context.Context, projectID string, year int, month time.Month) ([]LeaveRecord, error)
}
