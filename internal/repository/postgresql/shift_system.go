package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/shiftsystem"
	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftSystemRepository struct {
	db *database.DB
}

func NewShiftSystemRepository(db *database.DB) shiftsystem.Repository {
	return &shiftSystemRepository{db: db}
}

// GetByID implements shiftsystem.Repository.
func (r *shiftSystemRepository) GetByID(ctx context.Context, id string, projectID string) (shiftsystem.ShiftSystem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, name, type, per_shift_headcount, created_at, updated_at
		FROM shift_systems
		WHERE id = $1 AND project_id = $2
	`

	var s shiftsystem.ShiftSystem
	err := q.QueryRow(ctx, query, id, projectID).Scan(
		&s.ID, &s.ProjectID, &s.Name, &s.Type, &s.PerShiftHeadcount, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shiftsystem.ShiftSystem{}, shiftsystem.ErrShiftSystemNotFound
		}
		return shiftsystem.ShiftSystem{}, fmt.Errorf("failed to get shift system: %w", err)
	}

	shifts, err := r.getShiftDefinitions(ctx, s.ID)
	if err != nil {
		return shiftsystem.ShiftSystem{}, err
	}
	s.Shifts = shifts

	return s, nil
}

// GetByProjectID implements shiftsystem.Repository.
func (r *shiftSystemRepository) GetByProjectID(ctx context.Context, projectID string) ([]shiftsystem.ShiftSystem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, name, type, per_shift_headcount, created_at, updated_at
		FROM shift_systems
		WHERE project_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift systems: %w", err)
	}
	defer rows.Close()

	systems, err := scanShiftSystems(rows)
	if err != nil {
		return nil, err
	}

	for i := range systems {
		shifts, err := r.getShiftDefinitions(ctx, systems[i].ID)
		if err != nil {
			return nil, err
		}
		systems[i].Shifts = shifts
	}

	return systems, nil
}

// ListAll implements shiftsystem.Repository. Used by the pre-generation
// cron job to enumerate every project with a configured system.
func (r *shiftSystemRepository) ListAll(ctx context.Context) ([]shiftsystem.ShiftSystem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, name, type, per_shift_headcount, created_at, updated_at
		FROM shift_systems
		ORDER BY project_id, created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift systems: %w", err)
	}
	defer rows.Close()

	systems, err := scanShiftSystems(rows)
	if err != nil {
		return nil, err
	}

	for i := range systems {
		shifts, err := r.getShiftDefinitions(ctx, systems[i].ID)
		if err != nil {
			return nil, err
		}
		systems[i].Shifts = shifts
	}

	return systems, nil
}

func (r *shiftSystemRepository) getShiftDefinitions(ctx context.Context, shiftSystemID string) ([]shiftsystem.ShiftDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_system_id, name, type, start_hour, end_hour, duration_hours, is_night, break_minutes, position
		FROM shift_definitions
		WHERE shift_system_id = $1
		ORDER BY position
	`

	rows, err := q.Query(ctx, query, shiftSystemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift definitions: %w", err)
	}
	defer rows.Close()

	var defs []shiftsystem.ShiftDefinition
	for rows.Next() {
		var d shiftsystem.ShiftDefinition
		if err := rows.Scan(
			&d.ID, &d.ShiftSystemID, &d.Name, &d.Type, &d.StartHour, &d.EndHour,
			&d.DurationHours, &d.IsNight, &d.BreakMinutes, &d.Position,
		); err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return defs, nil
}

func scanShiftSystems(rows pgx.Rows) ([]shiftsystem.ShiftSystem, error) {
	var systems []shiftsystem.ShiftSystem
	for rows.Next() {
		var s shiftsystem.ShiftSystem
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.Name, &s.Type, &s.PerShiftHeadcount, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		systems = append(systems, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return systems, nil
}
