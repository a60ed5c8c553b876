package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/salary"
	"github.com/staffline/staffline-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	AddIncrement(w http.ResponseWriter, r *http.Request)
	BulkUpdate(w http.ResponseWriter, r *http.Request)
	GetEmployeeHistory(w http.ResponseWriter, r *http.Request)
	GetCompanyHistory(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// AddIncrement implements SalaryHandler.
func (s *SalaryHandlerImpl) AddIncrement(w http.ResponseWriter, r *http.Request) {
	var req salary.AddIncrementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddIncrement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := s.salaryService.AddIncrement(r.Context(), req)
	if err != nil {
		slog.Error("AddIncrement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary increment applied", resp)
}

// BulkUpdate implements SalaryHandler.
func (s *SalaryHandlerImpl) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req salary.BulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkUpdate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := s.salaryService.BulkUpdate(r.Context(), req)
	if err != nil {
		slog.Error("BulkUpdate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulk salary update applied", resp)
}

// GetEmployeeHistory implements SalaryHandler.
func (s *SalaryHandlerImpl) GetEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := s.salaryService.GetEmployeeHistory(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetEmployeeHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetCompanyHistory implements SalaryHandler.
func (s *SalaryHandlerImpl) GetCompanyHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.salaryService.GetCompanyHistory(r.Context())
	if err != nil {
		slog.Error("GetCompanyHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetStats implements SalaryHandler.
func (s *SalaryHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	resp, err := s.salaryService.GetStats(r.Context())
	if err != nil {
		slog.Error("GetStats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
