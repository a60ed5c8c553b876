package payroll

import (
	"context"
	"io"
)

// PayrollService defines monthly payout generation and payout queries.
type PayrollService interface {
	// Generate computes one payout per active employee for the period.
	// Employees with an existing row are skipped; force first deletes
	// pending rows for the period, never paid ones. Each insert stands
	// alone, so a failure partway leaves earlier payouts in place.
	Generate(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)

	ListByPeriod(ctx context.Context, month, year int) ([]PayoutResponse, error)

	// MarkPaid moves a pending payout to paid and stamps paid_at.
	MarkPaid(ctx context.Context, id string) (PayoutResponse, error)

	// GetMyPayouts lists the authenticated employee's payouts.
	GetMyPayouts(ctx context.Context) ([]PayoutResponse, error)

	// WritePayslip renders a payout as a PDF. Company actors may render
	// any payout in their company; employees only their own.
	WritePayslip(ctx context.Context, id string, w io.Writer) error
}
