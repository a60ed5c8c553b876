package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/master/designation"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
)

type designationRepository struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepository{db: db}
}

// Create implements designation.DesignationRepository.
func (r *designationRepository) Create(ctx context.Context, d designation.Designation) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	d.ID = uuid.NewString()

	query := `
		INSERT INTO designations (id, company_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.ID, d.CompanyID, d.Name, d.Description).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return designation.Designation{}, fmt.Errorf("failed to create designation: %w", err)
	}

	return d, nil
}

// GetByID implements designation.DesignationRepository.
func (r *designationRepository) GetByID(ctx context.Context, id string, companyID string) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM designations
		WHERE id = $1 AND company_id = $2
	`

	var d designation.Designation
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&d.ID, &d.CompanyID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return designation.Designation{}, designation.ErrDesignationNotFound
		}
		return designation.Designation{}, fmt.Errorf("failed to get designation: %w", err)
	}

	return d, nil
}

// GetByCompanyID implements designation.DesignationRepository.
func (r *designationRepository) GetByCompanyID(ctx context.Context, companyID string) ([]designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, description, created_at, updated_at
		FROM designations
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}
	defer rows.Close()

	var designations []designation.Designation
	for rows.Next() {
		var d designation.Designation
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan designation: %w", err)
		}
		designations = append(designations, d)
	}

	return designations, rows.Err()
}

// Update implements designation.DesignationRepository.
func (r *designationRepository) Update(ctx context.Context, req designation.UpdateDesignationRequest, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE designations
		SET name = COALESCE($3, name),
			description = COALESCE($4, description),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, req.ID, companyID, req.Name, req.Description)
	if err != nil {
		return fmt.Errorf("failed to update designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}

	return nil
}

// Delete implements designation.DesignationRepository.
func (r *designationRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM designations WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}

	return nil
}
