package payroll

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffline/staffline-backend-go/internal/domain/attendance"
	"github.com/staffline/staffline-backend-go/internal/domain/company"
	"github.com/staffline/staffline-backend-go/internal/domain/employee"
	"github.com/staffline/staffline-backend-go/internal/domain/leave"
	"github.com/staffline/staffline-backend-go/internal/domain/payroll"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
	"github.com/staffline/staffline-backend-go/internal/pkg/pdf"
)

type PayrollServiceImpl struct {
	payroll.PayoutRepository
	employee.EmployeeRepository
	company.CompanyRepository
	attendance.RecordRepository
	attendance.PolicyRepository
	attendance.HolidayRepository
	leave.LeaveRepository
}

func NewPayrollService(
	payoutRepo payroll.PayoutRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	recordRepo attendance.RecordRepository,
	policyRepo attendance.PolicyRepository,
	holidayRepo attendance.HolidayRepository,
	leaveRepo leave.LeaveRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayoutRepository:   payoutRepo,
		EmployeeRepository: employeeRepo,
		CompanyRepository:  companyRepo,
		RecordRepository:   recordRepo,
		PolicyRepository:   policyRepo,
		HolidayRepository:  holidayRepo,
		LeaveRepository:    leaveRepo,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Generate implements payroll.PayrollService. Runs outside any transaction
// on purpose: every payout insert stands alone, so a failure partway leaves
// the rows generated so far in place and the period can be re-run to pick
// up the rest.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	today := dateOnly(time.Now().UTC())
	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	if first.After(today) {
		return payroll.GeneratePayrollResponse{}, payroll.ErrInvalidPeriod
	}

	policy, err := s.PolicyRepository.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	if req.Force {
		if _, err := s.PayoutRepository.DeletePendingForPeriod(ctx, actor.CompanyID, req.Month, req.Year); err != nil {
			return payroll.GeneratePayrollResponse{}, err
		}
	}

	employees, err := s.EmployeeRepository.GetActiveByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	holidays, err := s.HolidayRepository.ListByCompanyAndRange(ctx, actor.CompanyID, first, last)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidaysByDate := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidaysByDate[attendance.DateKey(h.HolidayDate)] = struct{}{}
	}

	approved, err := s.LeaveRepository.ListApprovedInRange(ctx, actor.CompanyID, first, last)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	coverByEmployee := make(map[string][]payroll.LeaveCover, len(approved))
	for _, l := range approved {
		paid := l.PolicyIsPaid != nil && *l.PolicyIsPaid
		coverByEmployee[l.EmployeeID] = append(coverByEmployee[l.EmployeeID], payroll.LeaveCover{
			Span: attendance.DateSpan{Start: l.StartDate, End: l.EndDate},
			Paid: paid,
		})
	}

	var resp payroll.GeneratePayrollResponse
	for _, emp := range employees {
		if dateOnly(emp.JoinDate).After(last) {
			continue
		}

		exists, err := s.PayoutRepository.ExistsForPeriod(ctx, emp.ID, req.Month, req.Year)
		if err != nil {
			return resp, fmt.Errorf("failed to check payout existence: %w", err)
		}
		if exists {
			resp.Skipped++
			continue
		}

		records, err := s.RecordRepository.ListByEmployeeAndMonth(ctx, emp.ID, req.Month, req.Year)
		if err != nil {
			return resp, fmt.Errorf("failed to list attendance records: %w", err)
		}
		byDate := make(map[string]attendance.Record, len(records))
		for _, rec := range records {
			byDate[attendance.DateKey(rec.WorkDate)] = rec
		}

		workingDays := payroll.WorkingDays(req.Month, req.Year, emp.JoinDate, today, policy, holidaysByDate)
		breakdown := payroll.Compute(emp.Salary, policy, workingDays, byDate, coverByEmployee[emp.ID])

		_, err = s.PayoutRepository.Create(ctx, payroll.Payout{
			EmployeeID:           emp.ID,
			CompanyID:            actor.CompanyID,
			Month:                req.Month,
			Year:                 req.Year,
			BasicSalary:          emp.Salary,
			Allowances:           decimal.Zero,
			Deductions:           breakdown.TotalDeductions,
			NetSalary:            breakdown.NetSalary,
			WorkingDays:          breakdown.WorkingDays,
			LateDays:             breakdown.LateDays,
			LateDeduction:        breakdown.LateDeduction,
			AbsentDays:           breakdown.AbsentDays,
			AbsentDeduction:      breakdown.AbsentDeduction,
			UnpaidLeaveDays:      breakdown.UnpaidLeaveDays,
			UnpaidLeaveDeduction: breakdown.UnpaidLeaveDeduction,
			Status:               payroll.PayoutStatusPending,
		})
		if err != nil {
			return resp, fmt.Errorf("failed to create payout for employee %s: %w", emp.ID, err)
		}

		resp.Generated++
	}

	return resp, nil
}

// ListByPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayoutResponse, error) {
	req := payroll.GeneratePayrollRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	payouts, err := s.PayoutRepository.ListByPeriod(ctx, actor.CompanyID, month, year)
	if err != nil {
		return nil, err
	}

	return toPayoutResponses(payouts), nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayoutResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return payroll.PayoutResponse{}, err
	}

	if err := s.PayoutRepository.MarkPaid(ctx, id, actor.CompanyID); err != nil {
		return payroll.PayoutResponse{}, err
	}

	p, err := s.PayoutRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return payroll.PayoutResponse{}, err
	}

	return payroll.ToPayoutResponse(p), nil
}

// GetMyPayouts implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetMyPayouts(ctx context.Context) ([]payroll.PayoutResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	payouts, err := s.PayoutRepository.ListByEmployee(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return toPayoutResponses(payouts), nil
}

func toPayoutResponses(payouts []payroll.Payout) []payroll.PayoutResponse {
	responses := make([]payroll.PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		responses = append(responses, payroll.ToPayoutResponse(p))
	}
	return responses
}

// WritePayslip implements payroll.PayrollService. Employees can only render
// their own payouts; the lookup answers not-found either way so ownership
// is not probeable.
func (s *PayrollServiceImpl) WritePayslip(ctx context.Context, id string, w io.Writer) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	p, err := s.PayoutRepository.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}

	if actor.Type == jwt.ActorEmployee && p.EmployeeID != actor.ID {
		return payroll.ErrPayoutNotFound
	}

	c, err := s.CompanyRepository.GetByID(ctx, p.CompanyID)
	if err != nil {
		return err
	}

	data := pdf.PayslipData{
		CompanyName:          c.Name,
		Month:                time.Month(p.Month),
		Year:                 p.Year,
		BasicSalary:          p.BasicSalary,
		WorkingDays:          p.WorkingDays,
		LateDays:             p.LateDays,
		LateDeduction:        p.LateDeduction,
		AbsentDays:           p.AbsentDays,
		AbsentDeduction:      p.AbsentDeduction,
		UnpaidLeaveDays:      p.UnpaidLeaveDays,
		UnpaidLeaveDeduction: p.UnpaidLeaveDeduction,
		TotalDeductions:      p.Deductions,
		NetSalary:            p.NetSalary,
	}
	if p.EmployeeName != nil {
		data.EmployeeName = *p.EmployeeName
	}
	if p.Department != nil {
		data.Department = *p.Department
	}
	if p.Designation != nil {
		data.Designation = *p.Designation
	}

	if err := pdf.RenderPayslip(w, data); err != nil {
		return fmt.Errorf("failed to render payslip: %w", err)
	}

	return nil
}
