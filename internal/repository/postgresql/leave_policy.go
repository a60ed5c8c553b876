package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/leave"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
)

type leavePolicyRepository struct {
	db *database.DB
}

func NewLeavePolicyRepository(db *database.DB) leave.PolicyRepository {
	return &leavePolicyRepository{db: db}
}

// Create implements leave.PolicyRepository.
func (r *leavePolicyRepository) Create(ctx context.Context, p leave.Policy) (leave.Policy, error) {
	q := GetQuerier(ctx, r.db)

	p.ID = uuid.NewString()

	query := `
		INSERT INTO leave_policies (id, company_id, name, annual_allowance_days, is_paid, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.CompanyID, p.Name, p.AnnualAllowanceDays, p.IsPaid, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return leave.Policy{}, fmt.Errorf("failed to create leave policy: %w", err)
	}

	return p, nil
}

// GetByID implements leave.PolicyRepository.
func (r *leavePolicyRepository) GetByID(ctx context.Context, id string, companyID string) (leave.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, annual_allowance_days, is_paid, is_active,
			   created_at, updated_at
		FROM leave_policies
		WHERE id = $1 AND company_id = $2
	`

	var p leave.Policy
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.AnnualAllowanceDays, &p.IsPaid,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Policy{}, leave.ErrPolicyNotFound
		}
		return leave.Policy{}, fmt.Errorf("failed to get leave policy: %w", err)
	}

	return p, nil
}

// GetByCompanyID implements leave.PolicyRepository.
func (r *leavePolicyRepository) GetByCompanyID(ctx context.Context, companyID string) ([]leave.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, annual_allowance_days, is_paid, is_active,
			   created_at, updated_at
		FROM leave_policies
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave policies: %w", err)
	}
	defer rows.Close()

	var policies []leave.Policy
	for rows.Next() {
		var p leave.Policy
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Name, &p.AnnualAllowanceDays, &p.IsPaid,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave policy: %w", err)
		}
		policies = append(policies, p)
	}

	return policies, rows.Err()
}

// Update implements leave.PolicyRepository.
func (r *leavePolicyRepository) Update(ctx context.Context, req leave.UpdatePolicyRequest, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_policies
		SET name = COALESCE($3, name),
			annual_allowance_days = COALESCE($4, annual_allowance_days),
			is_paid = COALESCE($5, is_paid),
			is_active = COALESCE($6, is_active),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		req.ID, companyID, req.Name, req.AnnualAllowanceDays, req.IsPaid, req.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrPolicyNotFound
	}

	return nil
}
