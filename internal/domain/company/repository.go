package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	GetByEmail(ctx context.Context, email string) (Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, req UpdateCompanyRequest) error
}
