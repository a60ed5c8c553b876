package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// ClockIn creates today's attendance row for the authenticated employee.
	// A second clock-in the same day is rejected.
	ClockIn(ctx context.Context) (RecordResponse, error)

	// ClockOut closes today's row and records overtime past office end.
	ClockOut(ctx context.Context) (RecordResponse, error)

	// GetTodayStatus returns the authenticated employee's derived status
	// for today.
	GetTodayStatus(ctx context.Context) (DayStatusResponse, error)

	// GetMyHistory returns the authenticated employee's derived statuses
	// for one month.
	GetMyHistory(ctx context.Context, req MonthlyViewRequest) ([]DayStatusResponse, error)

	// GetCompanyDaily returns one derived status per employee for a date.
	GetCompanyDaily(ctx context.Context, req DailyViewRequest) ([]DayStatusResponse, error)

	// GetCompanyMonthly returns per-employee derived day lists with a
	// status summary for one month.
	GetCompanyMonthly(ctx context.Context, req MonthlyViewRequest) ([]MonthlyEmployeeResponse, error)

	GetPolicy(ctx context.Context) (PolicyResponse, error)
	UpsertPolicy(ctx context.Context, req UpsertPolicyRequest) (PolicyResponse, error)

	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
}
