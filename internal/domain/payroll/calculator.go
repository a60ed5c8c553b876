package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffline/staffline-backend-go/internal/domain/attendance"
)

// LeaveCover is an approved leave span tagged with its policy's paid flag.
type LeaveCover struct {
	Span attendance.DateSpan
	Paid bool
}

// Breakdown is the result of one employee-month computation. The invariants
// BasicSalary - TotalDeductions == NetSalary and NetSalary >= 0 always hold.
type Breakdown struct {
	WorkingDays     int
	LateDays        int
	AbsentDays      int
	UnpaidLeaveDays int

	PerDayRate           decimal.Decimal
	LateDeduction        decimal.Decimal
	AbsentDeduction      decimal.Decimal
	UnpaidLeaveDeduction decimal.Decimal
	TotalDeductions      decimal.Decimal
	NetSalary            decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WorkingDays lists the payable days of (month, year) for one employee:
// calendar days from max(first of month, join date) through min(end of
// month, today when the month is still running), minus weekly holidays and
// registered holiday dates.
func WorkingDays(month, year int, joinDate, today time.Time, policy attendance.Policy, holidays map[string]struct{}) []time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	t := dateOnly(today)
	if t.Before(last) {
		last = t
	}

	start := first
	if j := dateOnly(joinDate); j.After(start) {
		start = j
	}

	var days []time.Time
	for d := start; !d.After(last); d = d.AddDate(0, 0, 1) {
		if policy.WeeklyHolidays.Contains(d.Weekday()) {
			continue
		}
		if _, ok := holidays[attendance.DateKey(d)]; ok {
			continue
		}
		days = append(days, d)
	}
	return days
}

// Compute walks one employee's working days and derives the month's
// deduction totals. records is keyed by attendance.DateKey.
//
// A day with an explicit row is classified from its stored status. A day
// without one falls back to approved leave cover: unpaid leave counts as an
// unpaid-leave day, paid leave deducts nothing, and an uncovered day counts
// as absent.
func Compute(basic decimal.Decimal, policy attendance.Policy, workingDays []time.Time, records map[string]attendance.Record, leaves []LeaveCover) Breakdown {
	b := Breakdown{
		WorkingDays:          len(workingDays),
		PerDayRate:           decimal.Zero,
		LateDeduction:        decimal.Zero,
		AbsentDeduction:      decimal.Zero,
		UnpaidLeaveDeduction: decimal.Zero,
		TotalDeductions:      decimal.Zero,
		NetSalary:            basic,
	}
	if len(workingDays) == 0 {
		return b
	}

	b.PerDayRate = basic.Div(decimal.NewFromInt(int64(len(workingDays))))

	for _, day := range workingDays {
		if rec, ok := records[attendance.DateKey(day)]; ok {
			switch rec.Status {
			case attendance.StatusLate:
				b.LateDays++
			case attendance.StatusAbsent:
				b.AbsentDays++
			}
			continue
		}

		covered, paid := leaveCoverFor(leaves, day)
		switch {
		case covered && !paid:
			b.UnpaidLeaveDays++
		case covered:
			// Paid leave, nothing to deduct.
		default:
			b.AbsentDays++
		}
	}

	if excess := b.LateDays - policy.MaxLateAllowed; excess > 0 {
		n := decimal.NewFromInt(int64(excess))
		switch policy.LateDeductionType {
		case attendance.LateDeductionFixed:
			b.LateDeduction = n.Mul(policy.LateDeductionAmount)
		case attendance.LateDeductionPercentage:
			b.LateDeduction = n.Mul(basic.Mul(policy.LateDeductionAmount).Div(hundred))
		case attendance.LateDeductionPerDay:
			b.LateDeduction = n.Mul(b.PerDayRate)
		}
	}

	b.UnpaidLeaveDeduction = decimal.NewFromInt(int64(b.UnpaidLeaveDays)).Mul(b.PerDayRate)
	b.AbsentDeduction = decimal.NewFromInt(int64(b.AbsentDays)).Mul(b.PerDayRate)

	b.TotalDeductions = b.LateDeduction.Add(b.UnpaidLeaveDeduction).Add(b.AbsentDeduction)

	// Net salary never goes negative; the reported total is capped with it
	// so basic - deductions == net stays true.
	if b.TotalDeductions.GreaterThan(basic) {
		b.TotalDeductions = basic
	}
	b.NetSalary = basic.Sub(b.TotalDeductions)

	return b
}

func leaveCoverFor(leaves []LeaveCover, day time.Time) (covered, paid bool) {
	for _, lc := range leaves {
		if lc.Span.Covers(day) {
			return true, lc.Paid
		}
	}
	return false, false
}
