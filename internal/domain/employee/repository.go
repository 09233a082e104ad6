package employee

import "context"

// PersonnelStore is the read-only port to the personnel records.
// ListActive must return employees in stable registration order; the
// rotation phase of each employee is derived from their position in it.
type PersonnelStore interface {
	ListActive(ctx context.Context, projectID string) ([]Employee, error)
	GetByID(ctx context.Context, id string, projectID string) (Employee, error)
}
