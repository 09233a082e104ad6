package shiftsystem

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string, projectID string) (ShiftSystem, error)
	GetByProjectID(ctx context.Context, projectID string) ([]ShiftSystem, error)
	ListAll(ctx context.Context) ([]ShiftSystem, error)
}
