package leave

import (
	"context"
	"time"
)

type PolicyRepository interface {
	Create(ctx context.Context, p Policy) (Policy, error)
	GetByID(ctx context.Context, id string, companyID string) (Policy, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]Policy, error)
	Update(ctx context.Context, req UpdatePolicyRequest, companyID string) error
}

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	ListPendingByManager(ctx context.Context, managerID string) ([]Leave, error)
	ListByCompany(ctx context.Context, companyID string) ([]Leave, error)

	UpdateStatus(ctx context.Context, id string, status LeaveStatus, approvedAt *time.Time) error

	// SumApprovedDays totals approved days for one employee and policy
	// within the calendar year.
	SumApprovedDays(ctx context.Context, employeeID string, policyID string, year int) (int, error)

	// HasOverlapping reports whether a pending or approved leave intersects
	// [start, end] for the employee.
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// ListApprovedInRange returns approved leaves intersecting [from, to]
	// for a whole company, joined with the policy's paid flag.
	ListApprovedInRange(ctx context.Context, companyID string, from, to time.Time) ([]Leave, error)

	// ListApprovedByEmployeeInRange is the single-employee variant.
	ListApprovedByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error)
}
