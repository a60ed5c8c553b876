package auth

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffline/staffline-backend-go/internal/domain/admin"
	"github.com/staffline/staffline-backend-go/internal/domain/auth"
	"github.com/staffline/staffline-backend-go/internal/domain/company"
	"github.com/staffline/staffline-backend-go/internal/domain/employee"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
)

type fakeCompanyRepo struct {
	companies map[string]company.Company // keyed by email
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c company.Company) (company.Company, error) {
	f.companies[c.Email] = c
	return c, nil
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	for _, c := range f.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) GetByEmail(ctx context.Context, email string) (company.Company, error) {
	c, ok := f.companies[email]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) List(ctx context.Context) ([]company.Company, error) {
	out := make([]company.Company, 0, len(f.companies))
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, req company.UpdateCompanyRequest) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee // keyed by email
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.Email] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	e, ok := f.employees[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest, companyID string) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdateSalary(ctx context.Context, id string, companyID string, salary decimal.Decimal) error {
	return nil
}

type fakeAdminRepo struct {
	admins map[string]admin.Admin // keyed by email
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	a, ok := f.admins[email]
	if !ok {
		return admin.Admin{}, admin.ErrAdminNotFound
	}
	return a, nil
}

const testPassword = "password123"

func hashPassword(t *testing.T) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func newTestAuthService(t *testing.T) (auth.AuthService, *fakeCompanyRepo, *fakeEmployeeRepo, *fakeAdminRepo) {
	t.Helper()
	companyRepo := &fakeCompanyRepo{companies: make(map[string]company.Company)}
	employeeRepo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	adminRepo := &fakeAdminRepo{admins: make(map[string]admin.Admin)}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	svc := NewAuthService(companyRepo, employeeRepo, adminRepo, jwtService)
	return svc, companyRepo, employeeRepo, adminRepo
}

func TestCompanyLogin_Success(t *testing.T) {
	svc, companyRepo, _, _ := newTestAuthService(t)
	companyRepo.companies["acme@example.com"] = company.Company{
		ID:           "comp-1",
		Email:        "acme@example.com",
		PasswordHash: hashPassword(t),
		Status:       company.StatusActive,
	}

	resp, err := svc.CompanyLogin(context.Background(), auth.LoginRequest{
		Email:    "acme@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "company", resp.ActorType)
	assert.Equal(t, "comp-1", resp.ActorID)
}

func TestCompanyLogin_WrongPassword(t *testing.T) {
	svc, companyRepo, _, _ := newTestAuthService(t)
	companyRepo.companies["acme@example.com"] = company.Company{
		ID:           "comp-1",
		Email:        "acme@example.com",
		PasswordHash: hashPassword(t),
		Status:       company.StatusActive,
	}

	_, err := svc.CompanyLogin(context.Background(), auth.LoginRequest{
		Email:    "acme@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestCompanyLogin_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, err := svc.CompanyLogin(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestCompanyLogin_Inactive(t *testing.T) {
	svc, companyRepo, _, _ := newTestAuthService(t)
	companyRepo.companies["acme@example.com"] = company.Company{
		ID:           "comp-1",
		Email:        "acme@example.com",
		PasswordHash: hashPassword(t),
		Status:       company.StatusInactive,
	}

	_, err := svc.CompanyLogin(context.Background(), auth.LoginRequest{
		Email:    "acme@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestEmployeeLogin_Success(t *testing.T) {
	svc, companyRepo, employeeRepo, _ := newTestAuthService(t)
	companyRepo.companies["acme@example.com"] = company.Company{
		ID:     "comp-1",
		Email:  "acme@example.com",
		Status: company.StatusActive,
	}
	employeeRepo.employees["jo@example.com"] = employee.Employee{
		ID:           "emp-1",
		CompanyID:    "comp-1",
		Email:        "jo@example.com",
		PasswordHash: hashPassword(t),
		Status:       employee.StatusActive,
	}

	resp, err := svc.EmployeeLogin(context.Background(), auth.LoginRequest{
		Email:    "jo@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "employee", resp.ActorType)
	assert.Equal(t, "emp-1", resp.ActorID)
}

func TestEmployeeLogin_InactiveCompanyLocksOut(t *testing.T) {
	svc, companyRepo, employeeRepo, _ := newTestAuthService(t)
	companyRepo.companies["acme@example.com"] = company.Company{
		ID:     "comp-1",
		Email:  "acme@example.com",
		Status: company.StatusInactive,
	}
	employeeRepo.employees["jo@example.com"] = employee.Employee{
		ID:           "emp-1",
		CompanyID:    "comp-1",
		Email:        "jo@example.com",
		PasswordHash: hashPassword(t),
		Status:       employee.StatusActive,
	}

	_, err := svc.EmployeeLogin(context.Background(), auth.LoginRequest{
		Email:    "jo@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestAdminLogin_Success(t *testing.T) {
	svc, _, _, adminRepo := newTestAuthService(t)
	adminRepo.admins["root@example.com"] = admin.Admin{
		ID:           "admin-1",
		Email:        "root@example.com",
		PasswordHash: hashPassword(t),
	}

	resp, err := svc.AdminLogin(context.Background(), auth.LoginRequest{
		Email:    "root@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.ActorType)
	assert.Equal(t, "admin-1", resp.ActorID)
}

func TestLogin_ValidationFailure(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	_, err := svc.CompanyLogin(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestLogout_EmptyToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	err := svc.Logout(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	companyRepo := &fakeCompanyRepo{companies: make(map[string]company.Company)}
	employeeRepo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	adminRepo := &fakeAdminRepo{admins: make(map[string]admin.Admin)}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	svc := NewAuthService(companyRepo, employeeRepo, adminRepo, jwtService)

	token, _, err := jwtService.GenerateAccessToken(jwt.ActorCompany, "comp-1", "comp-1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))
	assert.True(t, jwtService.IsTokenRevoked(token))
}
