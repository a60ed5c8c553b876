package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffline/staffline-backend-go/internal/domain/company"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{CompanyRepository: companyRepo}
}

// GetMe implements company.CompanyService.
func (s *CompanyServiceImpl) GetMe(ctx context.Context) (company.CompanyResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.CompanyRepository.GetByID(ctx, actor.CompanyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return company.ToResponse(c), nil
}

// UpdateMe implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateMe(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	req.ID = actor.CompanyID

	if err := s.CompanyRepository.Update(ctx, req); err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.CompanyRepository.GetByID(ctx, req.ID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return company.ToResponse(c), nil
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := s.CompanyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, company.ToResponse(c))
	}

	return responses, nil
}

// Create implements company.CompanyService.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	_, err := s.CompanyRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return company.CompanyResponse{}, company.ErrEmailExists
	}
	if !errors.Is(err, company.ErrCompanyNotFound) {
		return company.CompanyResponse{}, fmt.Errorf("failed to check company email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	c, err := s.CompanyRepository.Create(ctx, company.Company{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Address:      req.Address,
		Status:       company.StatusActive,
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return company.ToResponse(c), nil
}
