package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) roster.AssignmentRepository {
	return &assignmentRepository{db: db}
}

const insertAssignmentQuery = `
	INSERT INTO roster_assignments (
		id, project_id, employee_id, date, shift_type, start_time, end_time,
		worked_hours, is_weekend, is_substitute, original_employee_id,
		original_shift_type, leave_code, is_holiday, notes
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`

// ReplaceMonth implements roster.AssignmentRepository. The delete and the
// inserts share one transaction so a failed run leaves the previous month
// intact.
func (r *assignmentRepository) ReplaceMonth(ctx context.Context, projectID string, year int, month time.Month, assignments []roster.Assignment) error {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := TxContext(ctx, tx)
		q := GetQuerier(txCtx, r.db)

		deleteQuery := `
			DELETE FROM roster_assignments
			WHERE project_id = $1 AND date >= $2 AND date < $3
		`
		if _, err := q.Exec(txCtx, deleteQuery, projectID, monthStart, nextMonth); err != nil {
			return fmt.Errorf("failed to clear month: %w", err)
		}

		batch := &pgx.Batch{}
		for _, a := range assignments {
			batch.Queue(insertAssignmentQuery,
				a.ID, a.ProjectID, a.EmployeeID, a.Date, a.ShiftType, a.StartTime, a.EndTime,
				a.WorkedHours, a.IsWeekend, a.IsSubstitute, a.OriginalEmployeeID,
				a.OriginalShiftType, a.LeaveCode, a.IsHoliday, a.Notes,
			)
		}

		results := tx.SendBatch(txCtx, batch)
		defer results.Close()

		for range assignments {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("failed to insert assignment: %w", err)
			}
		}

		return results.Close()
	})
}

// GetMonth implements roster.AssignmentRepository.
func (r *assignmentRepository) GetMonth(ctx context.Context, projectID string, year int, month time.Month) ([]roster.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT id, project_id, employee_id, date, shift_type, start_time, end_time,
		       worked_hours, is_weekend, is_substitute, original_employee_id,
		       original_shift_type, leave_code, is_holiday, notes
		FROM roster_assignments
		WHERE project_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query, projectID, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to get month assignments: %w", err)
	}
	defer rows.Close()

	var assignments []roster.Assignment
	for rows.Next() {
		var a roster.Assignment
		if err := rows.Scan(
			&a.ID, &a.ProjectID, &a.EmployeeID, &a.Date, &a.ShiftType, &a.StartTime, &a.EndTime,
			&a.WorkedHours, &a.IsWeekend, &a.IsSubstitute, &a.OriginalEmployeeID,
			&a.OriginalShiftType, &a.LeaveCode, &a.IsHoliday, &a.Notes,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
