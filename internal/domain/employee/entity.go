package employee

import "time"

// Employee records are owned by the personnel module of the surrounding
// system; the roster engine only reads them.
type Employee struct {
	ID           string
	ProjectID    string
	Name         string
	Code         *string
	IsActive     bool
	RegisteredAt time.Time
}
