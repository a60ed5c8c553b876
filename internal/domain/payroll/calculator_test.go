package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffline/staffline-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedPolicy(maxLate int) attendance.Policy {
	return attendance.Policy{
		OfficeStart:         "09:00",
		OfficeEnd:           "17:00",
		LateAllowMinutes:    15,
		WeeklyHolidays:      attendance.WeeklyHolidays{"Saturday", "Sunday"},
		LateDeductionType:   attendance.LateDeductionFixed,
		LateDeductionAmount: dec("10"),
		MaxLateAllowed:      maxLate,
	}
}

// allPresent builds one record per working day, with overrides applied by
// day index.
func allPresent(days []time.Time, overrides map[int]attendance.Status) map[string]attendance.Record {
	records := make(map[string]attendance.Record, len(days))
	for i, d := range days {
		status := attendance.StatusPresent
		if s, ok := overrides[i]; ok {
			status = s
		}
		records[attendance.DateKey(d)] = attendance.Record{WorkDate: d, Status: status}
	}
	return records
}

func TestWorkingDays_FullMonth(t *testing.T) {
	policy := fixedPolicy(2)
	// June 2025 has 21 weekdays; employee joined long before, month is over.
	days := WorkingDays(6, 2025, day(2020, time.January, 1), day(2025, time.July, 5), policy, nil)
	assert.Len(t, days, 21)
}

func TestWorkingDays_JoinMidMonth(t *testing.T) {
	policy := fixedPolicy(2)
	days := WorkingDays(6, 2025, day(2025, time.June, 10), day(2025, time.July, 5), policy, nil)
	assert.Len(t, days, 15)
	assert.Equal(t, day(2025, time.June, 10), days[0])
}

func TestWorkingDays_HolidayExcluded(t *testing.T) {
	policy := fixedPolicy(2)
	holidays := map[string]struct{}{"2025-06-16": {}}
	days := WorkingDays(6, 2025, day(2025, time.June, 10), day(2025, time.July, 5), policy, holidays)
	assert.Len(t, days, 14)
	for _, d := range days {
		assert.NotEqual(t, "2025-06-16", attendance.DateKey(d))
	}
}

func TestWorkingDays_CurrentMonthStopsAtToday(t *testing.T) {
	policy := fixedPolicy(2)
	days := WorkingDays(6, 2025, day(2024, time.January, 1), day(2025, time.June, 13), policy, nil)
	assert.Len(t, days, 10)
	assert.Equal(t, day(2025, time.June, 13), days[len(days)-1])
}

func TestWorkingDays_FutureMonthEmpty(t *testing.T) {
	policy := fixedPolicy(2)
	days := WorkingDays(6, 2025, day(2024, time.January, 1), day(2025, time.May, 31), policy, nil)
	assert.Empty(t, days)
}

func TestCompute_AllPresent(t *testing.T) {
	policy := fixedPolicy(2)
	days := WorkingDays(6, 2025, day(2020, time.January, 1), day(2025, time.July, 5), policy, nil)
	require.Len(t, days, 21)

	b := Compute(dec("2100"), policy, days, allPresent(days, nil), nil)

	assert.Equal(t, 0, b.LateDays)
	assert.Equal(t, 0, b.AbsentDays)
	assert.True(t, b.TotalDeductions.IsZero())
	assert.True(t, b.NetSalary.Equal(dec("2100")))
	assert.True(t, b.PerDayRate.Equal(dec("100")))
}

func TestCompute_LateWithinAllowance(t *testing.T) {
	policy := fixedPolicy(2)
	days := WorkingDays(6, 2025, day(2020, time.January, 1), day(2025, time.July, 5), policy, nil)

	records := allPresent(days, map[int]attendance.Status{0: attendance.StatusLate, 1: attendance.StatusLate})
	b := Compute(dec("2100"), policy, days, records, nil)

	assert.Equal(t, 2, b.LateDays)
	assert.True(t, b.LateDeduction.IsZero(), "no deduction until late count exceeds the allowance")
	assert.True(t, b.NetSalary.Equal(dec("2100")))
}

func TestCompute_ExcessLates_Fixed(t *testing.T) {
	policy := fixedPolicy(2)
	days := WorkingDays(6, 2025, day(2020, time.January, 1), day(2025, time.July, 5), policy, nil)

	records := allPresent(days, map[int]attendance.Status{
		0: attendance.StatusLate, 1: attendance.StatusLate, 2: attendance.StatusLate,
	})
	b := Compute(dec("2100"), policy, days, records, nil)

	assert.Equal(t, 3, b.LateDays)
	assert.True(t, b.LateDeduction.Equal(dec("10")), "one excess late at 10 fixed")
	assert.True(t, b.NetSalary.Equal(dec("2090")))
}

func TestCompute_ExcessLates_PerDay(t *testing.T) {
	policy := fixedPolicy(2)
	policy.LateDeductionType = attendance.LateDeductionPerDay
	days := WorkingDays(6, 2025, day(2020, time.January, 1), day(2025, time.July, 5), policy, nil)

	records := allPresent(days, map[int]attendance.Status{
		0: attendance.StatusLate, 1: attendance.StatusLate,
		2: attendance.StatusLate, 3: attendance.StatusLate,
	})
	b := Compute(dec("2100"), policy, days, records, nil)

	assert.Equal(t, 4, b.LateDays)
	assert.True(t, b.LateDeduction.Equal(dec("200")), "two excess lates at the per-day rate of 100")
}

func TestCompute_ExcessLates_Percentage(t *testing.T) {
	policy := fixedPolicy(2)
	policy.LateDeductionType = attendance.LateDeductionPercentage
	policy.LateDeductionAmount = dec("1")
	days := WorkingDays(6, 2025, day(2020, time.January, 1), day(2025, time.July, 5), policy, nil)

	records := allPresent(days, map[int]attendance.Status{
		0: attendance.StatusLate, 1: attendance.StatusLate, 2: attendance.StatusLate,
	})
	b := Compute(dec("2100"), policy, days, records, nil)

	assert.True(t, b.LateDeduction.Equal(dec("21")), "1 percent of salary per excess late")
}

func TestCompute_AbsencesAndLeave(t *testing.T) {
	policy := fixedPolicy(2)
	days := WorkingDays(6, 2025, day(2020, time.January, 1), day(2025, time.July, 5), policy, nil)
	require.Len(t, days, 21)

	// Records for all days except three: one covered by unpaid leave, one by
	// paid leave, one uncovered.
	records := allPresent(days, nil)
	unpaidDay := days[4]
	paidDay := days[5]
	absentDay := days[6]
	delete(records, attendance.DateKey(unpaidDay))
	delete(records, attendance.DateKey(paidDay))
	delete(records, attendance.DateKey(absentDay))

	leaves := []LeaveCover{
		{Span: attendance.DateSpan{Start: unpaidDay, End: unpaidDay}, Paid: false},
		{Span: attendance.DateSpan{Start: paidDay, End: paidDay}, Paid: true},
	}

	b := Compute(dec("2100"), policy, days, records, leaves)

	assert.Equal(t, 1, b.UnpaidLeaveDays)
	assert.Equal(t, 1, b.AbsentDays)
	assert.True(t, b.UnpaidLeaveDeduction.Equal(dec("100")))
	assert.True(t, b.AbsentDeduction.Equal(dec("100")))
	assert.True(t, b.NetSalary.Equal(dec("1900")))
}

func TestCompute_NetSalaryFloorsAtZero(t *testing.T) {
	policy := fixedPolicy(0)
	policy.LateDeductionAmount = dec("5000")
	days := WorkingDays(6, 2025, day(2020, time.January, 1), day(2025, time.July, 5), policy, nil)

	// Every day late with a huge fixed deduction.
	overrides := make(map[int]attendance.Status, len(days))
	for i := range days {
		overrides[i] = attendance.StatusLate
	}
	b := Compute(dec("2100"), policy, days, allPresent(days, overrides), nil)

	assert.True(t, b.NetSalary.IsZero())
	assert.True(t, b.TotalDeductions.Equal(dec("2100")), "deductions are capped with the floor")
}

func TestCompute_Invariants(t *testing.T) {
	policy := fixedPolicy(1)
	days := WorkingDays(6, 2025, day(2020, time.January, 1), day(2025, time.July, 5), policy, nil)

	scenarios := []map[int]attendance.Status{
		nil,
		{0: attendance.StatusLate},
		{0: attendance.StatusLate, 1: attendance.StatusLate, 2: attendance.StatusAbsent},
		{0: attendance.StatusAbsent, 1: attendance.StatusAbsent},
	}
	for _, overrides := range scenarios {
		b := Compute(dec("3000"), policy, days, allPresent(days, overrides), nil)
		assert.True(t, dec("3000").Sub(b.TotalDeductions).Equal(b.NetSalary))
		assert.False(t, b.NetSalary.IsNegative())
	}
}

func TestCompute_NoWorkingDays(t *testing.T) {
	policy := fixedPolicy(2)
	b := Compute(dec("3000"), policy, nil, nil, nil)

	assert.Equal(t, 0, b.WorkingDays)
	assert.True(t, b.TotalDeductions.IsZero())
	assert.True(t, b.NetSalary.Equal(dec("3000")))
}
