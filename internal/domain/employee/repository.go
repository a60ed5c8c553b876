package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, companyID string) ([]Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest, companyID string) error
	Delete(ctx context.Context, id string, companyID string) error

	// UpdateSalary runs through GetQuerier so the bulk salary path can call
	// it inside a transaction.
	UpdateSalary(ctx context.Context, id string, companyID string, salary decimal.Decimal) error
}
