package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffline/staffline-backend-go/internal/domain/employee"
	"github.com/staffline/staffline-backend-go/internal/domain/leave"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
)

type fakeLeaveRepo struct {
	leaves       []leave.Leave
	approvedDays int
	overlapping  bool
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	l.ID = "leave-1"
	f.leaves = append(f.leaves, l)
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	for _, l := range f.leaves {
		if l.ID == id {
			return l, nil
		}
	}
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListPendingByManager(ctx context.Context, managerID string) ([]leave.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByCompany(ctx context.Context, companyID string) ([]leave.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, approvedAt *time.Time) error {
	return nil
}

func (f *fakeLeaveRepo) SumApprovedDays(ctx context.Context, employeeID string, policyID string, year int) (int, error) {
	return f.approvedDays, nil
}

func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return f.overlapping, nil
}

func (f *fakeLeaveRepo) ListApprovedInRange(ctx context.Context, companyID string, from, to time.Time) ([]leave.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListApprovedByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	return nil, nil
}

type fakePolicyRepo struct {
	policy leave.Policy
}

func (f *fakePolicyRepo) Create(ctx context.Context, p leave.Policy) (leave.Policy, error) {
	return p, nil
}

func (f *fakePolicyRepo) GetByID(ctx context.Context, id string, companyID string) (leave.Policy, error) {
	if f.policy.ID != id || f.policy.CompanyID != companyID {
		return leave.Policy{}, leave.ErrPolicyNotFound
	}
	return f.policy, nil
}

func (f *fakePolicyRepo) GetByCompanyID(ctx context.Context, companyID string) ([]leave.Policy, error) {
	return []leave.Policy{f.policy}, nil
}

func (f *fakePolicyRepo) Update(ctx context.Context, req leave.UpdatePolicyRequest, companyID string) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee // keyed by ID
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok || e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
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

func employeeContext(t *testing.T, employeeID, companyID string) context.Context {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	token, _, err := jwtService.GenerateAccessToken(jwt.ActorEmployee, employeeID, companyID)
	require.NoError(t, err)
	decoded, err := jwtService.JWTAuth().Decode(token)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), decoded, nil)
}

func annualPolicy(allowance int) leave.Policy {
	return leave.Policy{
		ID:                  "pol-1",
		CompanyID:           "comp-1",
		Name:                "Annual Leave",
		AnnualAllowanceDays: allowance,
		IsPaid:              true,
		IsActive:            true,
	}
}

func newTestLeaveService(leaveRepo *fakeLeaveRepo, policy leave.Policy) leave.LeaveService {
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", CompanyID: "comp-1", Name: "Jo"},
	}}
	return NewLeaveService(leaveRepo, &fakePolicyRepo{policy: policy}, employeeRepo)
}

func TestApply_InsufficientBalanceRejectedBeforeInsert(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{approvedDays: 10}
	svc := newTestLeaveService(leaveRepo, annualPolicy(12))

	_, err := svc.Apply(employeeContext(t, "emp-1", "comp-1"), leave.ApplyLeaveRequest{
		LeavePolicyID: "pol-1",
		StartDate:     "2025-06-02",
		EndDate:       "2025-06-04",
		Reason:        "family trip",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	assert.Empty(t, leaveRepo.leaves, "a rejected application must not be stored")
}

func TestApply_BalanceExactlyExhaustedAllowed(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{approvedDays: 10}
	svc := newTestLeaveService(leaveRepo, annualPolicy(12))

	resp, err := svc.Apply(employeeContext(t, "emp-1", "comp-1"), leave.ApplyLeaveRequest{
		LeavePolicyID: "pol-1",
		StartDate:     "2025-06-02",
		EndDate:       "2025-06-03",
		Reason:        "family trip",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Days)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	require.Len(t, leaveRepo.leaves, 1)
}

func TestApply_InactivePolicyRejected(t *testing.T) {
	policy := annualPolicy(12)
	policy.IsActive = false
	leaveRepo := &fakeLeaveRepo{}
	svc := newTestLeaveService(leaveRepo, policy)

	_, err := svc.Apply(employeeContext(t, "emp-1", "comp-1"), leave.ApplyLeaveRequest{
		LeavePolicyID: "pol-1",
		StartDate:     "2025-06-02",
		EndDate:       "2025-06-03",
		Reason:        "family trip",
	})
	assert.ErrorIs(t, err, leave.ErrPolicyInactive)
	assert.Empty(t, leaveRepo.leaves)
}

func TestApply_OverlappingRejected(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{overlapping: true}
	svc := newTestLeaveService(leaveRepo, annualPolicy(12))

	_, err := svc.Apply(employeeContext(t, "emp-1", "comp-1"), leave.ApplyLeaveRequest{
		LeavePolicyID: "pol-1",
		StartDate:     "2025-06-02",
		EndDate:       "2025-06-03",
		Reason:        "family trip",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
	assert.Empty(t, leaveRepo.leaves)
}
