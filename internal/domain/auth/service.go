package auth

import "context"

// AuthService defines login and logout for all three actor kinds.
type AuthService interface {
	// CompanyLogin authenticates a company account by email and password.
	CompanyLogin(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// EmployeeLogin authenticates an employee; the issued token carries the
	// employing company in its claims.
	EmployeeLogin(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// AdminLogin authenticates a platform admin.
	AdminLogin(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Logout revokes the presented access token.
	Logout(ctx context.Context, token string) error
}
