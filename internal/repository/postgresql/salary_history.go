package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/salary"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
)

type salaryHistoryRepository struct {
	db *database.DB
}

func NewSalaryHistoryRepository(db *database.DB) salary.HistoryRepository {
	return &salaryHistoryRepository{db: db}
}

// Create implements salary.HistoryRepository.
func (r *salaryHistoryRepository) Create(ctx context.Context, h salary.History) (salary.History, error) {
	q := GetQuerier(ctx, r.db)

	h.ID = uuid.NewString()

	query := `
		INSERT INTO salary_histories (
			id, employee_id, company_id, previous_salary, current_salary,
			increment_amount, increment_percentage, increment_date, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		h.ID, h.EmployeeID, h.CompanyID, h.PreviousSalary, h.CurrentSalary,
		h.IncrementAmount, h.IncrementPercentage, h.IncrementDate, h.Reason,
	).Scan(&h.CreatedAt)
	if err != nil {
		return salary.History{}, fmt.Errorf("failed to create salary history: %w", err)
	}

	return h, nil
}

// ListByEmployee implements salary.HistoryRepository.
func (r *salaryHistoryRepository) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]salary.History, error) {
	query := `
		SELECT s.id, s.employee_id, s.company_id, s.previous_salary,
			   s.current_salary, s.increment_amount, s.increment_percentage,
			   s.increment_date, s.reason, s.created_at, e.name
		FROM salary_histories s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.company_id = $2
		ORDER BY s.increment_date DESC, s.created_at DESC
	`
	return r.list(ctx, query, employeeID, companyID)
}

// ListByCompany implements salary.HistoryRepository.
func (r *salaryHistoryRepository) ListByCompany(ctx context.Context, companyID string) ([]salary.History, error) {
	query := `
		SELECT s.id, s.employee_id, s.company_id, s.previous_salary,
			   s.current_salary, s.increment_amount, s.increment_percentage,
			   s.increment_date, s.reason, s.created_at, e.name
		FROM salary_histories s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.company_id = $1
		ORDER BY s.increment_date DESC, s.created_at DESC
	`
	return r.list(ctx, query, companyID)
}

func (r *salaryHistoryRepository) list(ctx context.Context, query string, args ...any) ([]salary.History, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary histories: %w", err)
	}
	defer rows.Close()

	var histories []salary.History
	for rows.Next() {
		h, err := scanSalaryHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary history: %w", err)
		}
		histories = append(histories, h)
	}

	return histories, rows.Err()
}

func scanSalaryHistory(row pgx.Row) (salary.History, error) {
	var h salary.History
	err := row.Scan(
		&h.ID, &h.EmployeeID, &h.CompanyID, &h.PreviousSalary, &h.CurrentSalary,
		&h.IncrementAmount, &h.IncrementPercentage, &h.IncrementDate, &h.Reason,
		&h.CreatedAt, &h.EmployeeName,
	)
	return h, err
}

// GetCompanyStats implements salary.HistoryRepository. Aggregates current
// salaries of active employees, not history rows.
func (r *salaryHistoryRepository) GetCompanyStats(ctx context.Context, companyID string) (salary.CompanyStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(salary), 0),
			   COALESCE(AVG(salary), 0),
			   COALESCE(MIN(salary), 0),
			   COALESCE(MAX(salary), 0)
		FROM employees
		WHERE company_id = $1 AND status = 'active'
	`

	var stats salary.CompanyStats
	err := q.QueryRow(ctx, query, companyID).Scan(
		&stats.EmployeeCount, &stats.TotalSalary, &stats.AverageSalary,
		&stats.MinSalary, &stats.MaxSalary,
	)
	if err != nil {
		return salary.CompanyStats{}, fmt.Errorf("failed to get company salary stats: %w", err)
	}

	payoutQuery := `
		SELECT month, year, COALESCE(SUM(net_salary), 0)
		FROM monthly_payouts
		WHERE company_id = $1
		  AND (year, month) = (
			SELECT year, month FROM monthly_payouts
			WHERE company_id = $1
			ORDER BY year DESC, month DESC
			LIMIT 1
		  )
		GROUP BY month, year
	`

	err = q.QueryRow(ctx, payoutQuery, companyID).Scan(
		&stats.LatestPayoutMonth, &stats.LatestPayoutYear, &stats.LatestPayoutTotal,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return salary.CompanyStats{}, fmt.Errorf("failed to get latest payout total: %w", err)
	}

	return stats, nil
}
