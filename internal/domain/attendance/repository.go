package attendance

import (
	"context"
	"time"
)

// RecordRepository defines data access for attendance rows. All company
// views carry companyID to keep tenants isolated.
type RecordRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByEmployeeAndDate returns nil, nil when no row exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	Update(ctx context.Context, rec Record) error

	// ListByCompanyAndDate returns all explicit rows for one calendar day.
	ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]Record, error)

	// ListByCompanyAndMonth returns all explicit rows within a month.
	ListByCompanyAndMonth(ctx context.Context, companyID string, month, year int) ([]Record, error)

	// ListByEmployeeAndMonth returns one employee's rows within a month.
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]Record, error)
}

type PolicyRepository interface {
	// GetByCompanyID returns ErrPolicyNotFound when the company has no policy.
	GetByCompanyID(ctx context.Context, companyID string) (Policy, error)
	Upsert(ctx context.Context, policy Policy) (Policy, error)
}

type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	Delete(ctx context.Context, id string, companyID string) error
	ListByCompany(ctx context.Context, companyID string) ([]Holiday, error)

	// ListByCompanyAndRange returns holidays with dates in [from, to].
	ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]Holiday, error)
}
