package payroll

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffline/staffline-backend-go/internal/domain/attendance"
	"github.com/staffline/staffline-backend-go/internal/domain/company"
	"github.com/staffline/staffline-backend-go/internal/domain/employee"
	"github.com/staffline/staffline-backend-go/internal/domain/leave"
	"github.com/staffline/staffline-backend-go/internal/domain/payroll"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
)

type fakePayoutRepo struct {
	payouts []payroll.Payout
	nextID  int
}

func (f *fakePayoutRepo) Create(ctx context.Context, p payroll.Payout) (payroll.Payout, error) {
	f.nextID++
	p.ID = "payout-" + strconv.Itoa(f.nextID)
	f.payouts = append(f.payouts, p)
	return p, nil
}

func (f *fakePayoutRepo) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	for _, p := range f.payouts {
		if p.EmployeeID == employeeID && p.Month == month && p.Year == year {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePayoutRepo) DeletePendingForPeriod(ctx context.Context, companyID string, month, year int) (int64, error) {
	var kept []payroll.Payout
	var deleted int64
	for _, p := range f.payouts {
		if p.CompanyID == companyID && p.Month == month && p.Year == year && p.Status == payroll.PayoutStatusPending {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	f.payouts = kept
	return deleted, nil
}

func (f *fakePayoutRepo) GetByID(ctx context.Context, id string, companyID string) (payroll.Payout, error) {
	for _, p := range f.payouts {
		if p.ID == id && p.CompanyID == companyID {
			return p, nil
		}
	}
	return payroll.Payout{}, payroll.ErrPayoutNotFound
}

func (f *fakePayoutRepo) ListByPeriod(ctx context.Context, companyID string, month, year int) ([]payroll.Payout, error) {
	var out []payroll.Payout
	for _, p := range f.payouts {
		if p.CompanyID == companyID && p.Month == month && p.Year == year {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayoutRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payout, error) {
	return nil, nil
}

func (f *fakePayoutRepo) MarkPaid(ctx context.Context, id string, companyID string) error {
	return nil
}

func (f *fakePayoutRepo) forEmployee(employeeID string, month, year int) []payroll.Payout {
	var out []payroll.Payout
	for _, p := range f.payouts {
		if p.EmployeeID == employeeID && p.Month == month && p.Year == year {
			out = append(out, p)
		}
	}
	return out
}

type fakeEmployeeRepo struct {
	active []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range f.active {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.active, nil
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.active, nil
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

type fakeCompanyRepo struct{}

func (f *fakeCompanyRepo) Create(ctx context.Context, c company.Company) (company.Company, error) {
	return c, nil
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	return company.Company{ID: id, Name: "Test Co"}, nil
}

func (f *fakeCompanyRepo) GetByEmail(ctx context.Context, email string) (company.Company, error) {
	return company.Company{}, company.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) List(ctx context.Context) ([]company.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, req company.UpdateCompanyRequest) error {
	return nil
}

type fakeRecordRepo struct{}

func (f *fakeRecordRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeRecordRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordRepo) Update(ctx context.Context, rec attendance.Record) error {
	return nil
}

func (f *fakeRecordRepo) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordRepo) ListByCompanyAndMonth(ctx context.Context, companyID string, month, year int) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordRepo) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Record, error) {
	return nil, nil
}

type fakePolicyRepo struct {
	policy attendance.Policy
}

func (f *fakePolicyRepo) GetByCompanyID(ctx context.Context, companyID string) (attendance.Policy, error) {
	return f.policy, nil
}

func (f *fakePolicyRepo) Upsert(ctx context.Context, policy attendance.Policy) (attendance.Policy, error) {
	return policy, nil
}

type fakeHolidayRepo struct{}

func (f *fakeHolidayRepo) Create(ctx context.Context, holiday attendance.Holiday) (attendance.Holiday, error) {
	return holiday, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

func (f *fakeHolidayRepo) ListByCompany(ctx context.Context, companyID string) ([]attendance.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]attendance.Holiday, error) {
	return nil, nil
}

type fakeLeaveRepo struct{}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Leave, error) {
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
	return 0, nil
}

func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return false, nil
}

func (f *fakeLeaveRepo) ListApprovedInRange(ctx context.Context, companyID string, from, to time.Time) ([]leave.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListApprovedByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	return nil, nil
}

func companyContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	token, _, err := jwtService.GenerateAccessToken(jwt.ActorCompany, companyID, companyID)
	require.NoError(t, err)
	decoded, err := jwtService.JWTAuth().Decode(token)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), decoded, nil)
}

func weekdayPolicy() attendance.Policy {
	return attendance.Policy{
		ID:                  "pol-1",
		CompanyID:           "comp-1",
		OfficeStart:         "09:00",
		OfficeEnd:           "17:00",
		LateAllowMinutes:    15,
		WeeklyHolidays:      attendance.WeeklyHolidays{"Saturday", "Sunday"},
		LateDeductionType:   attendance.LateDeductionFixed,
		LateDeductionAmount: decimal.NewFromInt(10),
		MaxLateAllowed:      2,
	}
}

func testEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:        id,
		CompanyID: "comp-1",
		Name:      "Employee " + id,
		Salary:    decimal.NewFromInt(2100),
		JoinDate:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Status:    employee.StatusActive,
	}
}

func newTestPayrollService(payoutRepo *fakePayoutRepo, employeeRepo *fakeEmployeeRepo) payroll.PayrollService {
	return NewPayrollService(
		payoutRepo,
		employeeRepo,
		&fakeCompanyRepo{},
		&fakeRecordRepo{},
		&fakePolicyRepo{policy: weekdayPolicy()},
		&fakeHolidayRepo{},
		&fakeLeaveRepo{},
	)
}

func TestGenerate_SkipsEmployeesWithExistingPayout(t *testing.T) {
	payoutRepo := &fakePayoutRepo{payouts: []payroll.Payout{{
		ID:         "existing-1",
		EmployeeID: "emp-1",
		CompanyID:  "comp-1",
		Month:      6,
		Year:       2025,
		Status:     payroll.PayoutStatusPending,
	}}}
	employeeRepo := &fakeEmployeeRepo{active: []employee.Employee{
		testEmployee("emp-1"),
		testEmployee("emp-2"),
	}}
	svc := newTestPayrollService(payoutRepo, employeeRepo)

	resp, err := svc.Generate(companyContext(t, "comp-1"), payroll.GeneratePayrollRequest{
		Month: 6,
		Year:  2025,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Generated)
	assert.Equal(t, 1, resp.Skipped)

	assert.Len(t, payoutRepo.forEmployee("emp-1", 6, 2025), 1, "existing payout must not be duplicated")
	assert.Len(t, payoutRepo.forEmployee("emp-2", 6, 2025), 1)
}

func TestGenerate_Rerun_SkipsEverything(t *testing.T) {
	payoutRepo := &fakePayoutRepo{}
	employeeRepo := &fakeEmployeeRepo{active: []employee.Employee{
		testEmployee("emp-1"),
		testEmployee("emp-2"),
	}}
	svc := newTestPayrollService(payoutRepo, employeeRepo)
	ctx := companyContext(t, "comp-1")
	req := payroll.GeneratePayrollRequest{Month: 6, Year: 2025}

	first, err := svc.Generate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Generated)

	second, err := svc.Generate(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Generated)
	assert.Equal(t, 2, second.Skipped)
	assert.Len(t, payoutRepo.payouts, 2)
}

func TestGenerate_ForceDeletesOnlyPendingPayouts(t *testing.T) {
	payoutRepo := &fakePayoutRepo{payouts: []payroll.Payout{
		{
			ID:         "pending-1",
			EmployeeID: "emp-1",
			CompanyID:  "comp-1",
			Month:      6,
			Year:       2025,
			Status:     payroll.PayoutStatusPending,
		},
		{
			ID:         "paid-1",
			EmployeeID: "emp-2",
			CompanyID:  "comp-1",
			Month:      6,
			Year:       2025,
			Status:     payroll.PayoutStatusPaid,
		},
	}}
	employeeRepo := &fakeEmployeeRepo{active: []employee.Employee{
		testEmployee("emp-1"),
		testEmployee("emp-2"),
	}}
	svc := newTestPayrollService(payoutRepo, employeeRepo)

	resp, err := svc.Generate(companyContext(t, "comp-1"), payroll.GeneratePayrollRequest{
		Month: 6,
		Year:  2025,
		Force: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Generated, "pending payout is regenerated")
	assert.Equal(t, 1, resp.Skipped, "paid payout's employee is skipped")

	paid := payoutRepo.forEmployee("emp-2", 6, 2025)
	require.Len(t, paid, 1)
	assert.Equal(t, "paid-1", paid[0].ID, "paid payout survives force untouched")
	assert.Equal(t, payroll.PayoutStatusPaid, paid[0].Status)

	regenerated := payoutRepo.forEmployee("emp-1", 6, 2025)
	require.Len(t, regenerated, 1)
	assert.NotEqual(t, "pending-1", regenerated[0].ID, "pending payout was replaced")
	assert.Equal(t, payroll.PayoutStatusPending, regenerated[0].Status)
}

func TestGenerate_FuturePeriodRejected(t *testing.T) {
	payoutRepo := &fakePayoutRepo{}
	employeeRepo := &fakeEmployeeRepo{active: []employee.Employee{testEmployee("emp-1")}}
	svc := newTestPayrollService(payoutRepo, employeeRepo)

	future := time.Now().UTC().AddDate(0, 2, 0)
	_, err := svc.Generate(companyContext(t, "comp-1"), payroll.GeneratePayrollRequest{
		Month: int(future.Month()),
		Year:  future.Year(),
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
	assert.Empty(t, payoutRepo.payouts)
}
