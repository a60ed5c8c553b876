package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffline/staffline-backend-go/internal/domain/admin"
	"github.com/staffline/staffline-backend-go/internal/domain/auth"
	"github.com/staffline/staffline-backend-go/internal/domain/company"
	"github.com/staffline/staffline-backend-go/internal/domain/employee"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	company.CompanyRepository
	employee.EmployeeRepository
	admin.AdminRepository
	jwt.Service
}

func NewAuthService(
	companyRepo company.CompanyRepository,
	employeeRepo employee.EmployeeRepository,
	adminRepo admin.AdminRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		CompanyRepository:  companyRepo,
		EmployeeRepository: employeeRepo,
		AdminRepository:    adminRepo,
		Service:            jwtService,
	}
}

func checkPassword(hash, password string) error {
	if hash == "" {
		return auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return auth.ErrInvalidCredentials
	}
	return nil
}

func (a *AuthServiceImpl) issueToken(actorType jwt.ActorType, actorID, companyID string) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(actorType, actorID, companyID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		ActorType:            string(actorType),
		ActorID:              actorID,
	}, nil
}

// CompanyLogin implements auth.AuthService.
func (a *AuthServiceImpl) CompanyLogin(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	c, err := a.CompanyRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get company by email: %w", err)
	}

	if err := checkPassword(c.PasswordHash, req.Password); err != nil {
		return auth.TokenResponse{}, err
	}

	if c.Status != company.StatusActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueToken(jwt.ActorCompany, c.ID, c.ID)
}

// EmployeeLogin implements auth.AuthService.
func (a *AuthServiceImpl) EmployeeLogin(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	e, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := checkPassword(e.PasswordHash, req.Password); err != nil {
		return auth.TokenResponse{}, err
	}

	if e.Status != employee.StatusActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	// An inactive company locks out its employees too.
	c, err := a.CompanyRepository.GetByID(ctx, e.CompanyID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to get employing company: %w", err)
	}
	if c.Status != company.StatusActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueToken(jwt.ActorEmployee, e.ID, e.CompanyID)
}

// AdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	ad, err := a.AdminRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	if err := checkPassword(ad.PasswordHash, req.Password); err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueToken(jwt.ActorAdmin, ad.ID, "")
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token)
	return nil
}
