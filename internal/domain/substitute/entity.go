package substitute

import "time"

// Substitute is a standby ("joker") employee who covers shifts lost to
// leave. Records are keyed by national id: registering the same person
// twice must reuse the existing record.
type Substitute struct {
	ID         string
	ProjectID  string
	Name       string
	NationalID string
	Company    *string
	Phone      *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
