package payroll

import "context"

type PayoutRepository interface {
	Create(ctx context.Context, p Payout) (Payout, error)

	// ExistsForPeriod is the idempotence check used by payroll generation.
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)

	// DeletePendingForPeriod removes only status='pending' rows; paid rows
	// are never touched. Returns the number of rows deleted.
	DeletePendingForPeriod(ctx context.Context, companyID string, month, year int) (int64, error)

	GetByID(ctx context.Context, id string, companyID string) (Payout, error)
	ListByPeriod(ctx context.Context, companyID string, month, year int) ([]Payout, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payout, error)
	MarkPaid(ctx context.Context, id string, companyID string) error
}
