package roster

import (
	"context"
	"time"
)

type Service interface {
	// Generate plans the month, overlays recorded leave, fills gaps with
	// standby personnel, validates coverage and replaces the stored month
	// atomically. Non-fatal findings (coverage gaps, missing substitutes)
	// are accumulated into the result rather than aborting the run.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error)

	// GetMonth returns the stored roster for a month.
	GetMonth(ctx context.Context, projectID string, year int, month time.Month) ([]Assignment, error)

	// Overtime recomputes the overtime summaries for the stored month.
	Overtime(ctx context.Context, projectID string, year int, month time.Month) ([]OvertimeSummary, error)
}
