package company

import "context"

// CompanyService covers the company's own profile plus the admin-side
// company directory.
type CompanyService interface {
	// GetMe returns the authenticated company's profile.
	GetMe(ctx context.Context) (CompanyResponse, error)

	// UpdateMe updates the authenticated company's profile.
	UpdateMe(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)

	// List returns all companies (admin only).
	List(ctx context.Context) ([]CompanyResponse, error)

	// Create registers a new company account (admin only).
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
}
