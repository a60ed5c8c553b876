package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffline/staffline-backend-go/internal/domain/attendance"
	"github.com/staffline/staffline-backend-go/internal/domain/employee"
	"github.com/staffline/staffline-backend-go/internal/domain/leave"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	attendance.RecordRepository
	attendance.PolicyRepository
	attendance.HolidayRepository
	employee.EmployeeRepository
	leave.LeaveRepository
}

func NewAttendanceService(
	recordRepo attendance.RecordRepository,
	policyRepo attendance.PolicyRepository,
	holidayRepo attendance.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		RecordRepository:   recordRepo,
		PolicyRepository:   policyRepo,
		HolidayRepository:  holidayRepo,
		EmployeeRepository: employeeRepo,
		LeaveRepository:    leaveRepo,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func holidaySet(holidays []attendance.Holiday) map[string]struct{} {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[attendance.DateKey(h.HolidayDate)] = struct{}{}
	}
	return set
}

func leaveSpans(leaves []leave.Leave) []attendance.DateSpan {
	spans := make([]attendance.DateSpan, 0, len(leaves))
	for _, l := range leaves {
		spans = append(spans, attendance.DateSpan{Start: l.StartDate, End: l.EndDate})
	}
	return spans
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.RecordResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	policy, err := a.PolicyRepository.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := time.Now().UTC()
	today := dateOnly(now)

	existing, err := a.RecordRepository.GetByEmployeeAndDate(ctx, actor.ID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedIn
	}

	status := attendance.StatusPresent
	lateMinutes := policy.LateBy(now)
	if lateMinutes > 0 {
		status = attendance.StatusLate
	}

	rec, err := a.RecordRepository.Create(ctx, attendance.Record{
		EmployeeID:  actor.ID,
		CompanyID:   actor.CompanyID,
		WorkDate:    today,
		ClockIn:     &now,
		Status:      status,
		LateMinutes: lateMinutes,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(rec), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.RecordResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	policy, err := a.PolicyRepository.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := time.Now().UTC()
	today := dateOnly(now)

	rec, err := a.RecordRepository.GetByEmployeeAndDate(ctx, actor.ID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrNotClockedIn
	}
	if rec.ClockOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedOut
	}

	rec.ClockOut = &now
	rec.OvertimeMinutes = policy.OvertimeBy(now)

	if err := a.RecordRepository.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToRecordResponse(*rec), nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayStatus(ctx context.Context) (attendance.DayStatusResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	today := dateOnly(time.Now().UTC())

	emp, err := a.EmployeeRepository.GetByID(ctx, actor.ID, actor.CompanyID)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	policy, err := a.PolicyRepository.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return attendance.DayStatusResponse{}, err
	}

	rec, err := a.RecordRepository.GetByEmployeeAndDate(ctx, actor.ID, today)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	holidays, err := a.HolidayRepository.ListByCompanyAndRange(ctx, actor.CompanyID, today, today)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	leaves, err := a.LeaveRepository.ListApprovedByEmployeeInRange(ctx, actor.ID, today, today)
	if err != nil {
		return attendance.DayStatusResponse{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	status := attendance.DeriveStatus(rec, policy, holidaySet(holidays), leaveSpans(leaves), today, today)

	resp := attendance.DayStatusResponse{
		EmployeeID:   actor.ID,
		EmployeeName: emp.Name,
		Date:         attendance.DateKey(today),
		Status:       string(status),
	}
	if rec != nil {
		r := attendance.ToRecordResponse(*rec)
		resp.Record = &r
	}

	return resp, nil
}

// GetMyHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyHistory(ctx context.Context, req attendance.MonthlyViewRequest) ([]attendance.DayStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, actor.ID, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	policy, err := a.PolicyRepository.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	today := dateOnly(time.Now().UTC())

	records, err := a.RecordRepository.ListByEmployeeAndMonth(ctx, actor.ID, req.Month, req.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	byDate := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byDate[attendance.DateKey(rec.WorkDate)] = rec
	}

	holidays, err := a.HolidayRepository.ListByCompanyAndRange(ctx, actor.CompanyID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidaysByDate := holidaySet(holidays)

	leaves, err := a.LeaveRepository.ListApprovedByEmployeeInRange(ctx, actor.ID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	spans := leaveSpans(leaves)

	var days []attendance.DayStatusResponse
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		var rec *attendance.Record
		if stored, ok := byDate[attendance.DateKey(d)]; ok {
			rec = &stored
		}

		status := attendance.DeriveStatus(rec, policy, holidaysByDate, spans, d, today)

		day := attendance.DayStatusResponse{
			EmployeeID:   actor.ID,
			EmployeeName: emp.Name,
			Date:         attendance.DateKey(d),
			Status:       string(status),
		}
		if rec != nil {
			r := attendance.ToRecordResponse(*rec)
			day.Record = &r
		}
		days = append(days, day)
	}

	return days, nil
}

// GetCompanyDaily implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetCompanyDaily(ctx context.Context, req attendance.DailyViewRequest) ([]attendance.DayStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	today := dateOnly(time.Now().UTC())

	policy, err := a.PolicyRepository.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	employees, err := a.EmployeeRepository.GetActiveByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	records, err := a.RecordRepository.ListByCompanyAndDate(ctx, actor.CompanyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	byEmployee := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = rec
	}

	holidays, err := a.HolidayRepository.ListByCompanyAndRange(ctx, actor.CompanyID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidaysByDate := holidaySet(holidays)

	leaves, err := a.LeaveRepository.ListApprovedInRange(ctx, actor.CompanyID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	spansByEmployee := make(map[string][]attendance.DateSpan, len(leaves))
	for _, l := range leaves {
		spansByEmployee[l.EmployeeID] = append(spansByEmployee[l.EmployeeID], attendance.DateSpan{Start: l.StartDate, End: l.EndDate})
	}

	responses := make([]attendance.DayStatusResponse, 0, len(employees))
	for _, emp := range employees {
		var rec *attendance.Record
		if stored, ok := byEmployee[emp.ID]; ok {
			rec = &stored
		}

		status := attendance.DeriveStatus(rec, policy, holidaysByDate, spansByEmployee[emp.ID], date, today)

		day := attendance.DayStatusResponse{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Date:         attendance.DateKey(date),
			Status:       string(status),
		}
		if rec != nil {
			r := attendance.ToRecordResponse(*rec)
			day.Record = &r
		}
		responses = append(responses, day)
	}

	return responses, nil
}

// GetCompanyMonthly implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetCompanyMonthly(ctx context.Context, req attendance.MonthlyViewRequest) ([]attendance.MonthlyEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	policy, err := a.PolicyRepository.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	today := dateOnly(time.Now().UTC())

	employees, err := a.EmployeeRepository.GetActiveByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	records, err := a.RecordRepository.ListByCompanyAndMonth(ctx, actor.CompanyID, req.Month, req.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	byEmployeeDate := make(map[string]map[string]attendance.Record)
	for _, rec := range records {
		if byEmployeeDate[rec.EmployeeID] == nil {
			byEmployeeDate[rec.EmployeeID] = make(map[string]attendance.Record)
		}
		byEmployeeDate[rec.EmployeeID][attendance.DateKey(rec.WorkDate)] = rec
	}

	holidays, err := a.HolidayRepository.ListByCompanyAndRange(ctx, actor.CompanyID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidaysByDate := holidaySet(holidays)

	leaves, err := a.LeaveRepository.ListApprovedInRange(ctx, actor.CompanyID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	spansByEmployee := make(map[string][]attendance.DateSpan, len(leaves))
	for _, l := range leaves {
		spansByEmployee[l.EmployeeID] = append(spansByEmployee[l.EmployeeID], attendance.DateSpan{Start: l.StartDate, End: l.EndDate})
	}

	responses := make([]attendance.MonthlyEmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		monthly := attendance.MonthlyEmployeeResponse{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Summary:      make(map[string]int),
		}

		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			var rec *attendance.Record
			if stored, ok := byEmployeeDate[emp.ID][attendance.DateKey(d)]; ok {
				rec = &stored
			}

			status := attendance.DeriveStatus(rec, policy, holidaysByDate, spansByEmployee[emp.ID], d, today)

			day := attendance.DayStatusResponse{
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Date:         attendance.DateKey(d),
				Status:       string(status),
			}
			if rec != nil {
				r := attendance.ToRecordResponse(*rec)
				day.Record = &r
			}
			monthly.Days = append(monthly.Days, day)
			monthly.Summary[string(status)]++
		}

		responses = append(responses, monthly)
	}

	return responses, nil
}

func toPolicyResponse(p attendance.Policy) attendance.PolicyResponse {
	return attendance.PolicyResponse{
		ID:                  p.ID,
		CompanyID:           p.CompanyID,
		OfficeStart:         p.OfficeStart,
		OfficeEnd:           p.OfficeEnd,
		LateAllowMinutes:    p.LateAllowMinutes,
		WeeklyHolidays:      p.WeeklyHolidays,
		LateDeductionType:   string(p.LateDeductionType),
		LateDeductionAmount: p.LateDeductionAmount,
		MaxLateAllowed:      p.MaxLateAllowed,
	}
}

// GetPolicy implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetPolicy(ctx context.Context) (attendance.PolicyResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return attendance.PolicyResponse{}, err
	}

	policy, err := a.PolicyRepository.GetByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return attendance.PolicyResponse{}, err
	}

	return toPolicyResponse(policy), nil
}

// UpsertPolicy implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpsertPolicy(ctx context.Context, req attendance.UpsertPolicyRequest) (attendance.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PolicyResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return attendance.PolicyResponse{}, err
	}

	policy, err := a.PolicyRepository.Upsert(ctx, attendance.Policy{
		CompanyID:           actor.CompanyID,
		OfficeStart:         req.OfficeStart,
		OfficeEnd:           req.OfficeEnd,
		LateAllowMinutes:    req.LateAllowMinutes,
		WeeklyHolidays:      req.WeeklyHolidays,
		LateDeductionType:   attendance.LateDeductionType(req.LateDeductionType),
		LateDeductionAmount: req.LateDeductionAmount,
		MaxLateAllowed:      req.MaxLateAllowed,
	})
	if err != nil {
		return attendance.PolicyResponse{}, err
	}

	return toPolicyResponse(policy), nil
}

// CreateHoliday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateHoliday(ctx context.Context, req attendance.CreateHolidayRequest) (attendance.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.HolidayResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return attendance.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	existing, err := a.HolidayRepository.ListByCompanyAndRange(ctx, actor.CompanyID, date, date)
	if err != nil {
		return attendance.HolidayResponse{}, fmt.Errorf("failed to check holiday date: %w", err)
	}
	if len(existing) > 0 {
		return attendance.HolidayResponse{}, attendance.ErrHolidayExists
	}

	holiday, err := a.HolidayRepository.Create(ctx, attendance.Holiday{
		CompanyID:   actor.CompanyID,
		HolidayDate: date,
		Name:        req.Name,
	})
	if err != nil {
		return attendance.HolidayResponse{}, err
	}

	return attendance.HolidayResponse{
		ID:   holiday.ID,
		Date: attendance.DateKey(holiday.HolidayDate),
		Name: holiday.Name,
	}, nil
}

// DeleteHoliday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	return a.HolidayRepository.Delete(ctx, id, actor.CompanyID)
}

// ListHolidays implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListHolidays(ctx context.Context) ([]attendance.HolidayResponse, error) {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	holidays, err := a.HolidayRepository.ListByCompany(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, attendance.HolidayResponse{
			ID:   h.ID,
			Date: attendance.DateKey(h.HolidayDate),
			Name: h.Name,
		})
	}

	return responses, nil
}
