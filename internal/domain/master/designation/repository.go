package designation

import "context"

type DesignationRepository interface {
	Create(ctx context.Context, d Designation) (Designation, error)
	GetByID(ctx context.Context, id string, companyID string) (Designation, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]Designation, error)
	Update(ctx context.Context, req UpdateDesignationRequest, companyID string) error
	Delete(ctx context.Context, id string, companyID string) error
}
