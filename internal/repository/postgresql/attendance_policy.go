package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/attendance"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
)

type attendancePolicyRepository struct {
	db *database.DB
}

func NewAttendancePolicyRepository(db *database.DB) attendance.PolicyRepository {
	return &attendancePolicyRepository{db: db}
}

// GetByCompanyID implements attendance.PolicyRepository.
func (r *attendancePolicyRepository) GetByCompanyID(ctx context.Context, companyID string) (attendance.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, office_start, office_end, late_allow_minutes,
			   weekly_holidays, late_deduction_type, late_deduction_amount,
			   max_late_allowed, created_at, updated_at
		FROM attendance_policies
		WHERE company_id = $1
	`

	var p attendance.Policy
	err := q.QueryRow(ctx, query, companyID).Scan(
		&p.ID, &p.CompanyID, &p.OfficeStart, &p.OfficeEnd, &p.LateAllowMinutes,
		&p.WeeklyHolidays, &p.LateDeductionType, &p.LateDeductionAmount,
		&p.MaxLateAllowed, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Policy{}, attendance.ErrPolicyNotFound
		}
		return attendance.Policy{}, fmt.Errorf("failed to get attendance policy: %w", err)
	}

	return p, nil
}

// Upsert implements attendance.PolicyRepository. One policy per company.
func (r *attendancePolicyRepository) Upsert(ctx context.Context, policy attendance.Policy) (attendance.Policy, error) {
	q := GetQuerier(ctx, r.db)

	if policy.ID == "" {
		policy.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_policies (
			id, company_id, office_start, office_end, late_allow_minutes,
			weekly_holidays, late_deduction_type, late_deduction_amount,
			max_late_allowed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id) DO UPDATE SET
			office_start = EXCLUDED.office_start,
			office_end = EXCLUDED.office_end,
			late_allow_minutes = EXCLUDED.late_allow_minutes,
			weekly_holidays = EXCLUDED.weekly_holidays,
			late_deduction_type = EXCLUDED.late_deduction_type,
			late_deduction_amount = EXCLUDED.late_deduction_amount,
			max_late_allowed = EXCLUDED.max_late_allowed,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		policy.ID, policy.CompanyID, policy.OfficeStart, policy.OfficeEnd,
		policy.LateAllowMinutes, policy.WeeklyHolidays, policy.LateDeductionType,
		policy.LateDeductionAmount, policy.MaxLateAllowed,
	).Scan(&policy.ID, &policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		return attendance.Policy{}, fmt.Errorf("failed to upsert attendance policy: %w", err)
	}

	return policy, nil
}
