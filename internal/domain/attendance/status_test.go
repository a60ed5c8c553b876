package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testPolicy() Policy {
	return Policy{
		OfficeStart:         "09:00",
		OfficeEnd:           "17:00",
		LateAllowMinutes:    15,
		WeeklyHolidays:      WeeklyHolidays{"Saturday", "Sunday"},
		LateDeductionType:   LateDeductionFixed,
		LateDeductionAmount: decimal.NewFromInt(10),
		MaxLateAllowed:      3,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(base time.Time, hour, min int) *time.Time {
	t := time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, time.UTC)
	return &t
}

func TestDeriveStatus_NoSignals(t *testing.T) {
	policy := testPolicy()
	today := day(2025, time.June, 16) // Monday

	// Past working day without a row is absent.
	got := DeriveStatus(nil, policy, nil, nil, day(2025, time.June, 13), today)
	assert.Equal(t, StatusAbsent, got)

	// Same inputs in the future are scheduled.
	got = DeriveStatus(nil, policy, nil, nil, day(2025, time.June, 17), today)
	assert.Equal(t, StatusScheduled, got)

	// Today itself counts as absent, not scheduled.
	got = DeriveStatus(nil, policy, nil, nil, today, today)
	assert.Equal(t, StatusAbsent, got)
}

func TestDeriveStatus_HolidaySignals(t *testing.T) {
	policy := testPolicy()
	today := day(2025, time.June, 16)

	holidays := map[string]struct{}{"2025-06-12": {}}
	got := DeriveStatus(nil, policy, holidays, nil, day(2025, time.June, 12), today)
	assert.Equal(t, StatusHoliday, got)

	// Saturday is a weekly holiday even without a registered entry.
	got = DeriveStatus(nil, policy, nil, nil, day(2025, time.June, 14), today)
	assert.Equal(t, StatusHoliday, got)
}

func TestDeriveStatus_ExplicitRecordWinsOverHoliday(t *testing.T) {
	policy := testPolicy()
	today := day(2025, time.June, 16)
	date := day(2025, time.June, 12)
	holidays := map[string]struct{}{"2025-06-12": {}}

	rec := &Record{Status: StatusAbsent, WorkDate: date}
	got := DeriveStatus(rec, policy, holidays, nil, date, today)
	assert.Equal(t, StatusAbsent, got, "an explicit record beats a holiday")
}

func TestDeriveStatus_LeaveCover(t *testing.T) {
	policy := testPolicy()
	today := day(2025, time.June, 16)
	leaves := []DateSpan{{Start: day(2025, time.June, 10), End: day(2025, time.June, 12)}}

	got := DeriveStatus(nil, policy, nil, leaves, day(2025, time.June, 11), today)
	assert.Equal(t, StatusOnLeave, got)

	got = DeriveStatus(nil, policy, nil, leaves, day(2025, time.June, 13), today)
	assert.Equal(t, StatusAbsent, got)
}

func TestDeriveStatus_LateRederivation(t *testing.T) {
	policy := testPolicy()
	today := day(2025, time.June, 16)
	date := day(2025, time.June, 13)

	// Stored as present but clock-in is past start + allowance.
	rec := &Record{Status: StatusPresent, WorkDate: date, ClockIn: clock(date, 9, 20)}
	got := DeriveStatus(rec, policy, nil, nil, date, today)
	assert.Equal(t, StatusLate, got)

	// Within the allowance stays present.
	rec = &Record{Status: StatusPresent, WorkDate: date, ClockIn: clock(date, 9, 10)}
	got = DeriveStatus(rec, policy, nil, nil, date, today)
	assert.Equal(t, StatusPresent, got)

	// A stored "late" is reported as stored, never re-derived back.
	rec = &Record{Status: StatusLate, WorkDate: date, ClockIn: clock(date, 9, 20)}
	got = DeriveStatus(rec, policy, nil, nil, date, today)
	assert.Equal(t, StatusLate, got)
}

func TestPolicyLateBy(t *testing.T) {
	policy := testPolicy()
	date := day(2025, time.June, 13)

	// 09:20 with a 15 minute allowance is 20 minutes late, measured from
	// office start.
	assert.Equal(t, 20, policy.LateBy(*clock(date, 9, 20)))
	assert.Equal(t, 0, policy.LateBy(*clock(date, 9, 15)))
	assert.Equal(t, 0, policy.LateBy(*clock(date, 8, 45)))
}

func TestPolicyOvertimeBy(t *testing.T) {
	policy := testPolicy()
	date := day(2025, time.June, 13)

	assert.Equal(t, 30, policy.OvertimeBy(*clock(date, 17, 30)))
	assert.Equal(t, 0, policy.OvertimeBy(*clock(date, 16, 50)))
}

func TestDateSpanCovers(t *testing.T) {
	span := DateSpan{Start: day(2025, time.June, 10), End: day(2025, time.June, 12)}
	assert.True(t, span.Covers(day(2025, time.June, 10)))
	assert.True(t, span.Covers(day(2025, time.June, 12)))
	assert.False(t, span.Covers(day(2025, time.June, 13)))
	assert.False(t, span.Covers(day(2025, time.June, 9)))
}
