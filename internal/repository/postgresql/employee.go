package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.PersonnelStore {
	return &employeeRepository{db: db}
}

// ListActive implements employee.PersonnelStore. Registration order is the
// rotation order, so the sort must stay stable across runs.
func (r *employeeRepository) ListActive(ctx context.Context, projectID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, name, code, is_active, created_at
		FROM employees
		WHERE project_id = $1 AND is_active = TRUE
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Name, &e.Code, &e.IsActive, &e.RegisteredAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.PersonnelStore.
func (r *employeeRepository) GetByID(ctx context.Context, id string, projectID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, name, code, is_active, created_at
		FROM employees
		WHERE id = $1 AND project_id = $2
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id, projectID).Scan(&e.ID, &e.ProjectID, &e.Name, &e.Code, &e.IsActive, &e.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}
