package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/staffline/staffline-backend-go/internal/domain/employee"
	"github.com/staffline/staffline-backend-go/internal/domain/leave"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	leave.PolicyRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	policyRepo leave.PolicyRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		PolicyRepository:   policyRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Apply implements leave.LeaveService. The balance check happens here and
// only here: approval later on does not re-validate it, so concurrent
// applications can jointly pass. Accepted as documented behavior.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}
	days := leave.DaysBetweenInclusive(start, end)

	policy, err := s.PolicyRepository.GetByID(ctx, req.LeavePolicyID, actor.CompanyID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !policy.IsActive {
		return leave.LeaveResponse{}, leave.ErrPolicyInactive
	}

	overlapping, err := s.LeaveRepository.HasOverlapping(ctx, actor.ID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping leaves: %w", err)
	}
	if overlapping {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	used, err := s.LeaveRepository.SumApprovedDays(ctx, actor.ID, policy.ID, start.Year())
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to sum approved leave days: %w", err)
	}
	if used+days > policy.AnnualAllowanceDays {
		return leave.LeaveResponse{}, leave.ErrInsufficientBalance
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, actor.ID, actor.CompanyID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID:    actor.ID,
		CompanyID:     actor.CompanyID,
		LeavePolicyID: policy.ID,
		StartDate:     start,
		EndDate:       end,
		Days:          days,
		Reason:        req.Reason,
		Status:        leave.StatusPending,
		ManagerID:     emp.ManagerID,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	created.EmployeeName = &emp.Name
	created.PolicyName = &policy.Name

	return leave.ToResponse(created), nil
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.LeaveRepository.ListByEmployee(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

// GetPendingApprovals implements leave.LeaveService.
func (s *LeaveServiceImpl) GetPendingApprovals(ctx context.Context) ([]leave.LeaveResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.LeaveRepository.ListPendingByManager(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

// GetCompanyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetCompanyLeaves(ctx context.Context) ([]leave.LeaveResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.LeaveRepository.ListByCompany(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	return toResponses(leaves), nil
}

func toResponses(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses
}

// UpdateStatus implements leave.LeaveService. Only the routed manager or
// the owning company may act; approved and rejected are terminal.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	switch actor.Type {
	case jwt.ActorCompany:
		if l.CompanyID != actor.CompanyID {
			return leave.LeaveResponse{}, leave.ErrNotAuthorizedToAct
		}
	case jwt.ActorEmployee:
		if l.ManagerID == nil || *l.ManagerID != actor.ID {
			return leave.LeaveResponse{}, leave.ErrNotAuthorizedToAct
		}
	default:
		return leave.LeaveResponse{}, leave.ErrNotAuthorizedToAct
	}

	if l.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	status := leave.LeaveStatus(req.Status)
	var approvedAt *time.Time
	if status == leave.StatusApproved {
		now := time.Now().UTC()
		approvedAt = &now
	}

	if err := s.LeaveRepository.UpdateStatus(ctx, id, status, approvedAt); err != nil {
		return leave.LeaveResponse{}, err
	}

	l.Status = status
	l.ApprovedAt = approvedAt

	return leave.ToResponse(l), nil
}

// CreatePolicy implements leave.LeaveService.
func (s *LeaveServiceImpl) CreatePolicy(ctx context.Context, req leave.CreatePolicyRequest) (leave.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.PolicyResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return leave.PolicyResponse{}, err
	}

	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}

	policy, err := s.PolicyRepository.Create(ctx, leave.Policy{
		CompanyID:           actor.CompanyID,
		Name:                req.Name,
		AnnualAllowanceDays: req.AnnualAllowanceDays,
		IsPaid:              isPaid,
		IsActive:            true,
	})
	if err != nil {
		return leave.PolicyResponse{}, err
	}

	return toPolicyResponse(policy), nil
}

// ListPolicies implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPolicies(ctx context.Context) ([]leave.PolicyResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	policies, err := s.PolicyRepository.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		responses = append(responses, toPolicyResponse(p))
	}

	return responses, nil
}

// UpdatePolicy implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdatePolicy(ctx context.Context, req leave.UpdatePolicyRequest) (leave.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.PolicyResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return leave.PolicyResponse{}, err
	}

	if err := s.PolicyRepository.Update(ctx, req, actor.CompanyID); err != nil {
		return leave.PolicyResponse{}, err
	}

	policy, err := s.PolicyRepository.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return leave.PolicyResponse{}, err
	}

	return toPolicyResponse(policy), nil
}

func toPolicyResponse(p leave.Policy) leave.PolicyResponse {
	return leave.PolicyResponse{
		ID:                  p.ID,
		Name:                p.Name,
		AnnualAllowanceDays: p.AnnualAllowanceDays,
		IsPaid:              p.IsPaid,
		IsActive:            p.IsActive,
	}
}
