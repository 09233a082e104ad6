package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/substitute"
	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type substituteRepository struct {
	db *database.DB
}

func NewSubstituteRepository(db *database.DB) substitute.Store {
	return &substituteRepository{db: db}
}

// FindActive implements substitute.Store. Registration order keeps the
// pick deterministic across regeneration runs.
func (r *substituteRepository) FindActive(ctx context.Context, projectID string) (*substitute.Substitute, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, name, national_id, company, phone, is_active, created_at, updated_at
		FROM substitutes
		WHERE project_id = $1 AND is_active = TRUE
		ORDER BY created_at, id
		LIMIT 1
	`

	var s substitute.Substitute
	err := q.QueryRow(ctx, query, projectID).Scan(
		&s.ID, &s.ProjectID, &s.Name, &s.NationalID, &s.Company, &s.Phone,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active substitute: %w", err)
	}

	return &s, nil
}

// Upsert implements substitute.Store. The (project_id, national_id) unique
// constraint makes re-registering the same person update the existing row
// instead of inserting a duplicate.
func (r *substituteRepository) Upsert(ctx context.Context, sub substitute.Substitute) (substitute.Substitute, error) {
	if sub.NationalID == "" {
		return substitute.Substitute{}, substitute.ErrNationalIDRequired
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO substitutes (id, project_id, name, national_id, company, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (project_id, national_id) DO UPDATE
		SET name = EXCLUDED.name,
		    company = EXCLUDED.company,
		    phone = EXCLUDED.phone,
		    is_active = EXCLUDED.is_active,
		    updated_at = NOW()
		RETURNING id, project_id, name, national_id, company, phone, is_active, created_at, updated_at
	`

	var s substitute.Substitute
	err := q.QueryRow(ctx, query,
		uuid.NewString(), sub.ProjectID, sub.Name, sub.NationalID, sub.Company, sub.Phone, sub.IsActive,
	).Scan(
		&s.ID, &s.ProjectID, &s.Name, &s.NationalID, &s.Company, &s.Phone,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return substitute.Substitute{}, fmt.Errorf("failed to upsert substitute: %w", err)
	}

	return s, nil
}
