package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffline/staffline-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	Month int  `json:"month"`
	Year  int  `json:"year"`
	Force bool `json:"force,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GeneratePayrollResponse reports partial progress: employees whose payout
// row already existed are counted as skipped, not failures.
type GeneratePayrollResponse struct {
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
}

type PayoutResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`

	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`

	WorkingDays          int             `json:"working_days"`
	LateDays             int             `json:"late_days"`
	LateDeduction        decimal.Decimal `json:"late_deduction"`
	AbsentDays           int             `json:"absent_days"`
	AbsentDeduction      decimal.Decimal `json:"absent_deduction"`
	UnpaidLeaveDays      int             `json:"unpaid_leave_days"`
	UnpaidLeaveDeduction decimal.Decimal `json:"unpaid_leave_deduction"`

	Status string  `json:"status"`
	PaidAt *string `json:"paid_at,omitempty"`
}

func ToPayoutResponse(p Payout) PayoutResponse {
	var paidAt *string
	if p.PaidAt != nil {
		str := p.PaidAt.Format("2006-01-02 15:04:05")
		paidAt = &str
	}

	return PayoutResponse{
		ID:                   p.ID,
		EmployeeID:           p.EmployeeID,
		EmployeeName:         p.EmployeeName,
		Department:           p.Department,
		Designation:          p.Designation,
		Month:                p.Month,
		Year:                 p.Year,
		BasicSalary:          p.BasicSalary,
		Allowances:           p.Allowances,
		Deductions:           p.Deductions,
		NetSalary:            p.NetSalary,
		WorkingDays:          p.WorkingDays,
		LateDays:             p.LateDays,
		LateDeduction:        p.LateDeduction,
		AbsentDays:           p.AbsentDays,
		AbsentDeduction:      p.AbsentDeduction,
		UnpaidLeaveDays:      p.UnpaidLeaveDays,
		UnpaidLeaveDeduction: p.UnpaidLeaveDeduction,
		Status:               string(p.Status),
		PaidAt:               paidAt,
	}
}
