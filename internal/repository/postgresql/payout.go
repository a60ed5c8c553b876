package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/payroll"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
)

type payoutRepository struct {
	db *database.DB
}

func NewPayoutRepository(db *database.DB) payroll.PayoutRepository {
	return &payoutRepository{db: db}
}

const payoutJoinedColumns = `
	p.id, p.employee_id, p.company_id, p.month, p.year,
	p.basic_salary, p.allowances, p.deductions, p.net_salary,
	p.working_days, p.late_days, p.late_deduction,
	p.absent_days, p.absent_deduction,
	p.unpaid_leave_days, p.unpaid_leave_deduction,
	p.status, p.paid_at, p.created_at, p.updated_at,
	e.name, e.department, e.designation
`

func scanJoinedPayout(row pgx.Row) (payroll.Payout, error) {
	var p payroll.Payout
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Month, &p.Year,
		&p.BasicSalary, &p.Allowances, &p.Deductions, &p.NetSalary,
		&p.WorkingDays, &p.LateDays, &p.LateDeduction,
		&p.AbsentDays, &p.AbsentDeduction,
		&p.UnpaidLeaveDays, &p.UnpaidLeaveDeduction,
		&p.Status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.Department, &p.Designation,
	)
	return p, err
}

// Create implements payroll.PayoutRepository.
func (r *payoutRepository) Create(ctx context.Context, p payroll.Payout) (payroll.Payout, error) {
	q := GetQuerier(ctx, r.db)

	p.ID = uuid.NewString()

	query := `
		INSERT INTO monthly_payouts (
			id, employee_id, company_id, month, year,
			basic_salary, allowances, deductions, net_salary,
			working_days, late_days, late_deduction,
			absent_days, absent_deduction,
			unpaid_leave_days, unpaid_leave_deduction, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.CompanyID, p.Month, p.Year,
		p.BasicSalary, p.Allowances, p.Deductions, p.NetSalary,
		p.WorkingDays, p.LateDays, p.LateDeduction,
		p.AbsentDays, p.AbsentDeduction,
		p.UnpaidLeaveDays, p.UnpaidLeaveDeduction, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payroll.Payout{}, fmt.Errorf("failed to create payout: %w", err)
	}

	return p, nil
}

// ExistsForPeriod implements payroll.PayoutRepository.
func (r *payoutRepository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM monthly_payouts
			WHERE employee_id = $1 AND month = $2 AND year = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payout existence: %w", err)
	}

	return exists, nil
}

// DeletePendingForPeriod implements payroll.PayoutRepository.
func (r *payoutRepository) DeletePendingForPeriod(ctx context.Context, companyID string, month, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM monthly_payouts
		WHERE company_id = $1 AND month = $2 AND year = $3 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, companyID, month, year)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pending payouts: %w", err)
	}

	return tag.RowsAffected(), nil
}

// GetByID implements payroll.PayoutRepository.
func (r *payoutRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.Payout, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payoutJoinedColumns + `
		FROM monthly_payouts p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1 AND p.company_id = $2
	`

	p, err := scanJoinedPayout(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payout{}, payroll.ErrPayoutNotFound
		}
		return payroll.Payout{}, fmt.Errorf("failed to get payout: %w", err)
	}

	return p, nil
}

// ListByPeriod implements payroll.PayoutRepository.
func (r *payoutRepository) ListByPeriod(ctx context.Context, companyID string, month, year int) ([]payroll.Payout, error) {
	query := `
		SELECT ` + payoutJoinedColumns + `
		FROM monthly_payouts p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.company_id = $1 AND p.month = $2 AND p.year = $3
		ORDER BY e.name
	`
	return r.list(ctx, query, companyID, month, year)
}

// ListByEmployee implements payroll.PayoutRepository.
func (r *payoutRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payout, error) {
	query := `
		SELECT ` + payoutJoinedColumns + `
		FROM monthly_payouts p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.year DESC, p.month DESC
	`
	return r.list(ctx, query, employeeID)
}

func (r *payoutRepository) list(ctx context.Context, query string, args ...any) ([]payroll.Payout, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	defer rows.Close()

	var payouts []payroll.Payout
	for rows.Next() {
		p, err := scanJoinedPayout(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payout: %w", err)
		}
		payouts = append(payouts, p)
	}

	return payouts, rows.Err()
}

// MarkPaid implements payroll.PayoutRepository. Paid rows stay paid.
func (r *payoutRepository) MarkPaid(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_payouts
		SET status = 'paid', paid_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark payout paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already paid; let the caller disambiguate.
		if _, getErr := r.GetByID(ctx, id, companyID); getErr != nil {
			return getErr
		}
		return payroll.ErrPayoutAlreadyPaid
	}

	return nil
}
