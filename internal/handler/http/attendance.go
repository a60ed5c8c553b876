package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/attendance"
	"github.com/staffline/staffline-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetTodayStatus(w http.ResponseWriter, r *http.Request)
	GetMyHistory(w http.ResponseWriter, r *http.Request)
	GetCompanyDaily(w http.ResponseWriter, r *http.Request)
	GetCompanyMonthly(w http.ResponseWriter, r *http.Request)

	GetPolicy(w http.ResponseWriter, r *http.Request)
	UpsertPolicy(w http.ResponseWriter, r *http.Request)

	CreateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// monthlyViewFromQuery reads ?month= and ?year=, defaulting to the current
// month when absent. Non-numeric values fall through to zero and fail the
// request's own validation.
func monthlyViewFromQuery(r *http.Request) attendance.MonthlyViewRequest {
	now := time.Now()
	req := attendance.MonthlyViewRequest{Month: int(now.Month()), Year: now.Year()}

	if m := r.URL.Query().Get("month"); m != "" {
		req.Month, _ = strconv.Atoi(m)
	}
	if y := r.URL.Query().Get("year"); y != "" {
		req.Year, _ = strconv.Atoi(y)
	}

	return req
}

// ClockIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	resp, err := a.attendanceService.ClockIn(r.Context())
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", resp)
}

// ClockOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	resp, err := a.attendanceService.ClockOut(r.Context())
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", resp)
}

// GetTodayStatus implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetTodayStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := a.attendanceService.GetTodayStatus(r.Context())
	if err != nil {
		slog.Error("GetTodayStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMyHistory implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := a.attendanceService.GetMyHistory(r.Context(), monthlyViewFromQuery(r))
	if err != nil {
		slog.Error("GetMyHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetCompanyDaily implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetCompanyDaily(w http.ResponseWriter, r *http.Request) {
	req := attendance.DailyViewRequest{Date: r.URL.Query().Get("date")}
	if req.Date == "" {
		req.Date = time.Now().UTC().Format("2006-01-02")
	}

	resp, err := a.attendanceService.GetCompanyDaily(r.Context(), req)
	if err != nil {
		slog.Error("GetCompanyDaily service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetCompanyMonthly implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetCompanyMonthly(w http.ResponseWriter, r *http.Request) {
	resp, err := a.attendanceService.GetCompanyMonthly(r.Context(), monthlyViewFromQuery(r))
	if err != nil {
		slog.Error("GetCompanyMonthly service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetPolicy implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetPolicy(w http.ResponseWriter, r *http.Request) {
	resp, err := a.attendanceService.GetPolicy(r.Context())
	if err != nil {
		slog.Error("GetPolicy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpsertPolicy implements AttendanceHandler.
func (a *AttendanceHandlerImpl) UpsertPolicy(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertPolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertPolicy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.attendanceService.UpsertPolicy(r.Context(), req)
	if err != nil {
		slog.Error("UpsertPolicy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance policy saved", resp)
}

// CreateHoliday implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := a.attendanceService.CreateHoliday(r.Context(), req)
	if err != nil {
		slog.Error("CreateHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", resp)
}

// DeleteHoliday implements AttendanceHandler.
func (a *AttendanceHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := a.attendanceService.DeleteHoliday(r.Context(), id); err != nil {
		slog.Error("DeleteHoliday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// ListHolidays implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	resp, err := a.attendanceService.ListHolidays(r.Context())
	if err != nil {
		slog.Error("ListHolidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
