package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffline/staffline-backend-go/internal/pkg/validator"
)

type RecordResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Date            string  `json:"date"`
	ClockIn         *string `json:"clock_in,omitempty"`
	ClockOut        *string `json:"clock_out,omitempty"`
	Status          string  `json:"status"`
	LateMinutes     int     `json:"late_minutes"`
	OvertimeMinutes int     `json:"overtime_minutes"`
}

func ToRecordResponse(rec Record) RecordResponse {
	clockTime := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		str := t.Format("15:04")
		return &str
	}

	return RecordResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		EmployeeName:    rec.EmployeeName,
		Date:            rec.WorkDate.Format("2006-01-02"),
		ClockIn:         clockTime(rec.ClockIn),
		ClockOut:        clockTime(rec.ClockOut),
		Status:          string(rec.Status),
		LateMinutes:     rec.LateMinutes,
		OvertimeMinutes: rec.OvertimeMinutes,
	}
}

// DayStatusResponse is a derived status for a day that may have no stored
// row; Record is nil for derived-only days.
type DayStatusResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	Record       *RecordResponse `json:"record,omitempty"`
}

type MonthlyEmployeeResponse struct {
	EmployeeID   string              `json:"employee_id"`
	EmployeeName string              `json:"employee_name"`
	Days         []DayStatusResponse `json:"days"`
	Summary      map[string]int      `json:"summary"`
}

type DailyViewRequest struct {
	Date string `json:"date"`
}

func (r *DailyViewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyViewRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyViewRequest) Validate() error {
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

type UpsertPolicyRequest struct {
	OfficeStart         string          `json:"office_start_time"`
	OfficeEnd           string          `json:"office_end_time"`
	LateAllowMinutes    int             `json:"late_allow_minutes"`
	WeeklyHolidays      []string        `json:"weekly_holidays"`
	LateDeductionType   string          `json:"late_deduction_type"`
	LateDeductionAmount decimal.Decimal `json:"late_deduction_amount"`
	MaxLateAllowed      int             `json:"max_late_allowed"`
}

func (r *UpsertPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClockTime(r.OfficeStart) {
		errs = append(errs, validator.ValidationError{Field: "office_start_time", Message: "must be a HH:MM clock time"})
	}
	if !validator.IsValidClockTime(r.OfficeEnd) {
		errs = append(errs, validator.ValidationError{Field: "office_end_time", Message: "must be a HH:MM clock time"})
	}
	if r.LateAllowMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_allow_minutes", Message: "must not be negative"})
	}
	for _, day := range r.WeeklyHolidays {
		if !validator.IsValidDayName(day) {
			errs = append(errs, validator.ValidationError{Field: "weekly_holidays", Message: "must contain English day names"})
			break
		}
	}
	switch LateDeductionType(r.LateDeductionType) {
	case LateDeductionFixed, LateDeductionPercentage, LateDeductionPerDay:
	default:
		errs = append(errs, validator.ValidationError{Field: "late_deduction_type", Message: "must be 'fixed', 'percentage' or 'per_day'"})
	}
	if r.LateDeductionAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "late_deduction_amount", Message: "must not be negative"})
	}
	if r.MaxLateAllowed < 0 {
		errs = append(errs, validator.ValidationError{Field: "max_late_allowed", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PolicyResponse struct {
	ID                  string          `json:"id"`
	CompanyID           string          `json:"company_id"`
	OfficeStart         string          `json:"office_start_time"`
	OfficeEnd           string          `json:"office_end_time"`
	LateAllowMinutes    int             `json:"late_allow_minutes"`
	WeeklyHolidays      []string        `json:"weekly_holidays"`
	LateDeductionType   string          `json:"late_deduction_type"`
	LateDeductionAmount decimal.Decimal `json:"late_deduction_amount"`
	MaxLateAllowed      int             `json:"max_late_allowed"`
}

type CreateHolidayRequest struct {
	Date string `json:"holiday_date"`
	Name string `json:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "holiday_date", Message: "holiday_date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "holiday_date", Message: "holiday_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"holiday_date"`
	Name string `json:"name"`
}
