package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/leave"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveJoinedColumns = `
	l.id, l.employee_id, l.company_id, l.leave_policy_id, l.start_date,
	l.end_date, l.days, l.reason, l.status, l.manager_id, l.approved_at,
	l.created_at, l.updated_at, e.name, p.name, p.is_paid
`

func scanJoinedLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.CompanyID, &l.LeavePolicyID, &l.StartDate,
		&l.EndDate, &l.Days, &l.Reason, &l.Status, &l.ManagerID, &l.ApprovedAt,
		&l.CreatedAt, &l.UpdatedAt, &l.EmployeeName, &l.PolicyName, &l.PolicyIsPaid,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l.ID = uuid.NewString()

	query := `
		INSERT INTO leaves (
			id, employee_id, company_id, leave_policy_id, start_date, end_date,
			days, reason, status, manager_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.ID, l.EmployeeID, l.CompanyID, l.LeavePolicyID, l.StartDate, l.EndDate,
		l.Days, l.Reason, l.Status, l.ManagerID,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		JOIN leave_policies p ON p.id = l.leave_policy_id
		WHERE l.id = $1
	`

	l, err := scanJoinedLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return l, nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		JOIN leave_policies p ON p.id = l.leave_policy_id
		WHERE l.employee_id = $1
		ORDER BY l.start_date DESC
	`
	return r.list(ctx, query, employeeID)
}

// ListPendingByManager implements leave.LeaveRepository.
func (r *leaveRepository) ListPendingByManager(ctx context.Context, managerID string) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		JOIN leave_policies p ON p.id = l.leave_policy_id
		WHERE l.manager_id = $1 AND l.status = 'pending'
		ORDER BY l.created_at
	`
	return r.list(ctx, query, managerID)
}

// ListByCompany implements leave.LeaveRepository.
func (r *leaveRepository) ListByCompany(ctx context.Context, companyID string) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		JOIN leave_policies p ON p.id = l.leave_policy_id
		WHERE l.company_id = $1
		ORDER BY l.start_date DESC
	`
	return r.list(ctx, query, companyID)
}

func (r *leaveRepository) list(ctx context.Context, query string, args ...any) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanJoinedLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, approvedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $2, approved_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, approvedAt)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// SumApprovedDays implements leave.LeaveRepository.
func (r *leaveRepository) SumApprovedDays(ctx context.Context, employeeID string, policyID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(days), 0)
		FROM leaves
		WHERE employee_id = $1
		  AND leave_policy_id = $2
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM start_date) = $3
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, policyID, year).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	return total, nil
}

// HasOverlapping implements leave.LeaveRepository.
func (r *leaveRepository) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leaves
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leaves: %w", err)
	}

	return exists, nil
}

// ListApprovedInRange implements leave.LeaveRepository.
func (r *leaveRepository) ListApprovedInRange(ctx context.Context, companyID string, from, to time.Time) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		JOIN leave_policies p ON p.id = l.leave_policy_id
		WHERE l.company_id = $1
		  AND l.status = 'approved'
		  AND l.start_date <= $3
		  AND l.end_date >= $2
		ORDER BY l.start_date
	`
	return r.list(ctx, query, companyID, from, to)
}

// ListApprovedByEmployeeInRange implements leave.LeaveRepository.
func (r *leaveRepository) ListApprovedByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		JOIN leave_policies p ON p.id = l.leave_policy_id
		WHERE l.employee_id = $1
		  AND l.status = 'approved'
		  AND l.start_date <= $3
		  AND l.end_date >= $2
		ORDER BY l.start_date
	`
	return r.list(ctx, query, employeeID, from, to)
}
