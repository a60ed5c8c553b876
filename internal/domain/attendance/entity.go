package attendance

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status of one employee on one day. Stored for explicit records; derived at
// read time for days without one.
type Status string

const (
	StatusPresent   Status = "present"
	StatusLate      Status = "late"
	StatusAbsent    Status = "absent"
	StatusHalfDay   Status = "half_day"
	StatusHoliday   Status = "holiday"
	StatusOnLeave   Status = "on_leave"
	StatusScheduled Status = "scheduled"
)

// Record is one employee's attendance row for one work date. At most one row
// exists per (employee, date).
type Record struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	WorkDate        time.Time
	ClockIn         *time.Time
	ClockOut        *time.Time
	Status          Status
	LateMinutes     int
	OvertimeMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields for responses
	EmployeeName *string
}

// LateDeductionType decides how excess late arrivals are priced at payroll
// time.
type LateDeductionType string

const (
	LateDeductionFixed      LateDeductionType = "fixed"
	LateDeductionPercentage LateDeductionType = "percentage"
	LateDeductionPerDay     LateDeductionType = "per_day"
)

// WeeklyHolidays is a JSONB array of English day names ("Saturday", ...).
type WeeklyHolidays []string

func (w WeeklyHolidays) Value() (driver.Value, error) {
	if len(w) == 0 {
		return "[]", nil
	}
	return json.Marshal(w)
}

func (w *WeeklyHolidays) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan WeeklyHolidays: invalid type")
	}
	return json.Unmarshal(bytes, w)
}

// Contains reports whether day is a weekly holiday.
func (w WeeklyHolidays) Contains(day time.Weekday) bool {
	for _, name := range w {
		if name == day.String() {
			return true
		}
	}
	return false
}

// Policy is a company's attendance configuration, one row per company.
// OfficeStart and OfficeEnd are "HH:MM" clock times.
type Policy struct {
	ID                  string
	CompanyID           string
	OfficeStart         string
	OfficeEnd           string
	LateAllowMinutes    int
	WeeklyHolidays      WeeklyHolidays
	LateDeductionType   LateDeductionType
	LateDeductionAmount decimal.Decimal
	MaxLateAllowed      int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Holiday is a named calendar exception day for a company.
type Holiday struct {
	ID          string
	CompanyID   string
	HolidayDate time.Time
	Name        string
	CreatedAt   time.Time
}

// minutesOfDay parses an "HH:MM" clock string. Malformed values fall back to
// zero, matching a policy that was never configured.
func minutesOfDay(clock string) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// LateBy returns how many minutes past office start the clock-in is, or 0 if
// it falls within the allowance window. Lateness is measured from office
// start, not from the end of the allowance.
func (p Policy) LateBy(clockIn time.Time) int {
	startMin := minutesOfDay(p.OfficeStart)
	inMin := clockIn.Hour()*60 + clockIn.Minute()
	if inMin <= startMin+p.LateAllowMinutes {
		return 0
	}
	return inMin - startMin
}

// OvertimeBy returns how many minutes past office end the clock-out is.
func (p Policy) OvertimeBy(clockOut time.Time) int {
	endMin := minutesOfDay(p.OfficeEnd)
	outMin := clockOut.Hour()*60 + clockOut.Minute()
	if outMin <= endMin {
		return 0
	}
	return outMin - endMin
}
