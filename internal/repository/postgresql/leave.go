package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveStore {
	return &leaveRepository{db: db}
}

// GetLeave implements leave.LeaveStore.
func (r *leaveRepository) GetLeave(ctx context.Context, employeeID string, date time.Time) (*leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, code, paid, created_at
		FROM leave_records
		WHERE employee_id = $1 AND date = $2
	`

	var rec leave.LeaveRecord
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Code, &rec.Paid, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave record: %w", err)
	}

	return &rec, nil
}

// ListForMonth implements leave.LeaveStore.
func (r *leaveRepository) ListForMonth(ctx context.Context, projectID string, year int, month time.Month) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT lr.id, lr.employee_id, lr.date, lr.code, lr.paid, lr.created_at
		FROM leave_records lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE e.project_id = $1 AND lr.date >= $2 AND lr.date < $3
		ORDER BY lr.date, lr.employee_id
	`

	rows, err := q.Query(ctx, query, projectID, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		var rec leave.LeaveRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Code, &rec.Paid, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
