package attendance

import "time"

// DateSpan is an inclusive date range, used for approved leave coverage.
type DateSpan struct {
	Start time.Time
	End   time.Time
}

// Covers reports whether date falls inside the span. Comparison is by
// calendar day.
func (s DateSpan) Covers(date time.Time) bool {
	d := DateKey(date)
	return DateKey(s.Start) <= d && d <= DateKey(s.End)
}

// DateKey formats a time as the canonical "YYYY-MM-DD" map key used for
// holiday and record lookups.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DeriveStatus classifies one employee's day. It is the single source of
// truth shared by the daily view, the monthly view and payroll generation.
//
// Signals are layered in strict priority order:
//  1. an explicit record wins, with "present" re-derived to "late" when the
//     stored clock-in exceeds office start plus the late allowance;
//  2. a registered holiday;
//  3. a weekly holiday day-name from policy;
//  4. an approved leave covering the date;
//  5. a future date is "scheduled";
//  6. anything else is "absent".
//
// An explicit record beats a holiday on purpose: a stored absence on a
// holiday still reads as absent.
func DeriveStatus(rec *Record, policy Policy, holidays map[string]struct{}, leaves []DateSpan, date, today time.Time) Status {
	if rec != nil {
		if rec.Status == StatusPresent && rec.ClockIn != nil && policy.LateBy(*rec.ClockIn) > 0 {
			return StatusLate
		}
		return rec.Status
	}

	if _, ok := holidays[DateKey(date)]; ok {
		return StatusHoliday
	}

	if policy.WeeklyHolidays.Contains(date.Weekday()) {
		return StatusHoliday
	}

	for _, span := range leaves {
		if span.Covers(date) {
			return StatusOnLeave
		}
	}

	if DateKey(date) > DateKey(today) {
		return StatusScheduled
	}

	return StatusAbsent
}
