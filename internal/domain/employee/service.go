package employee

import "context"

// EmployeeService defines company-side employee administration.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Update never touches salary; salary changes flow through the salary
	// increment path.
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	Delete(ctx context.Context, id string) error
}
