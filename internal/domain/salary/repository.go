package salary

import (
	"context"

	"github.com/shopspring/decimal"
)

// CompanyStats aggregates current salary figures across a company, plus
// the net payout total of the most recent payroll period. The latest-month
// fields stay zero when no payroll has ever been generated.
type CompanyStats struct {
	EmployeeCount int64
	TotalSalary   decimal.Decimal
	AverageSalary decimal.Decimal
	MinSalary     decimal.Decimal
	MaxSalary     decimal.Decimal

	LatestPayoutMonth int
	LatestPayoutYear  int
	LatestPayoutTotal decimal.Decimal
}

type HistoryRepository interface {
	// Create runs through GetQuerier so the bulk salary path can call it
	// inside a transaction.
	Create(ctx context.Context, h History) (History, error)
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]History, error)
	ListByCompany(ctx context.Context, companyID string) ([]History, error)
	GetCompanyStats(ctx context.Context, companyID string) (CompanyStats, error)
}
