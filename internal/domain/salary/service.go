package salary

import "context"

// SalaryService defines salary increments and history reporting.
type SalaryService interface {
	// AddIncrement resolves one increment input into the full arithmetic,
	// updates the employee's salary and appends a history row.
	AddIncrement(ctx context.Context, req AddIncrementRequest) (HistoryResponse, error)

	// BulkUpdate applies a batch of new salaries in a single transaction.
	// Unchanged salaries are skipped without a history row; any failure
	// rolls back the whole batch.
	BulkUpdate(ctx context.Context, req BulkUpdateRequest) (BulkUpdateResponse, error)

	GetEmployeeHistory(ctx context.Context, employeeID string) ([]HistoryResponse, error)
	GetCompanyHistory(ctx context.Context) ([]HistoryResponse, error)
	GetStats(ctx context.Context) (CompanyStatsResponse, error)
}
