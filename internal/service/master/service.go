package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffline/staffline-backend-go/internal/domain/master/department"
	"github.com/staffline/staffline-backend-go/internal/domain/master/designation"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
)

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	// Designation operations
	CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error)
	ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error)
	UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest) (designation.DesignationResponse, error)
	DeleteDesignation(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo  department.DepartmentRepository
	designationRepo designation.DesignationRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		CompanyID:   actor.CompanyID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return department.DepartmentResponse{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
	}, nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.DepartmentResponse{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
		})
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.departmentRepo.Update(ctx, req, actor.CompanyID); err != nil {
		if isUniqueViolation(err) {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, err
	}

	d, err := s.departmentRepo.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	}, nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.departmentRepo.Delete(ctx, id, actor.CompanyID)
}

// ==================== DESIGNATION OPERATIONS ====================

func (s *masterServiceImpl) CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.DesignationResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return designation.DesignationResponse{}, err
	}

	created, err := s.designationRepo.Create(ctx, designation.Designation{
		CompanyID:   actor.CompanyID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return designation.DesignationResponse{}, designation.ErrDesignationNameExists
		}
		return designation.DesignationResponse{}, fmt.Errorf("failed to create designation: %w", err)
	}

	return designation.DesignationResponse{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
	}, nil
}

func (s *masterServiceImpl) ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	designations, err := s.designationRepo.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]designation.DesignationResponse, 0, len(designations))
	for _, d := range designations {
		responses = append(responses, designation.DesignationResponse{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
		})
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest) (designation.DesignationResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return designation.DesignationResponse{}, err
	}

	if err := s.designationRepo.Update(ctx, req, actor.CompanyID); err != nil {
		if isUniqueViolation(err) {
			return designation.DesignationResponse{}, designation.ErrDesignationNameExists
		}
		return designation.DesignationResponse{}, err
	}

	d, err := s.designationRepo.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return designation.DesignationResponse{}, err
	}

	return designation.DesignationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	}, nil
}

func (s *masterServiceImpl) DeleteDesignation(ctx context.Context, id string) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.designationRepo.Delete(ctx, id, actor.CompanyID)
}
