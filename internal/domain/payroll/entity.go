package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "pending"
	PayoutStatusPaid    PayoutStatus = "paid"
)

// Payout is one employee's computed salary for one calendar month. One row
// per (employee, month, year).
type Payout struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Month      int
	Year       int

	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal

	WorkingDays          int
	LateDays             int
	LateDeduction        decimal.Decimal
	AbsentDays           int
	AbsentDeduction      decimal.Decimal
	UnpaidLeaveDays      int
	UnpaidLeaveDeduction decimal.Decimal

	Status    PayoutStatus
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields for responses
	EmployeeName *string
	Department   *string
	Designation  *string
}
