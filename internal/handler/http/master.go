package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/master/department"
	"github.com/staffline/staffline-backend-go/internal/domain/master/designation"
	"github.com/staffline/staffline-backend-go/internal/handler/http/response"
	"github.com/staffline/staffline-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateDesignation(w http.ResponseWriter, r *http.Request)
	ListDesignations(w http.ResponseWriter, r *http.Request)
	UpdateDesignation(w http.ResponseWriter, r *http.Request)
	DeleteDesignation(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (m *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := m.masterService.CreateDepartment(r.Context(), req)
	if err != nil {
		slog.Error("CreateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created", resp)
}

func (m *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	resp, err := m.masterService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (m *MasterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	resp, err := m.masterService.UpdateDepartment(r.Context(), req)
	if err != nil {
		slog.Error("UpdateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated", resp)
}

func (m *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	if err := m.masterService.DeleteDepartment(r.Context(), id); err != nil {
		slog.Error("DeleteDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted", nil)
}

// ==================== DESIGNATION OPERATIONS ====================

func (m *MasterHandlerImpl) CreateDesignation(w http.ResponseWriter, r *http.Request) {
	var req designation.CreateDesignationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDesignation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := m.masterService.CreateDesignation(r.Context(), req)
	if err != nil {
		slog.Error("CreateDesignation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Designation created", resp)
}

func (m *MasterHandlerImpl) ListDesignations(w http.ResponseWriter, r *http.Request) {
	resp, err := m.masterService.ListDesignations(r.Context())
	if err != nil {
		slog.Error("ListDesignations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (m *MasterHandlerImpl) UpdateDesignation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Designation ID is required", nil)
		return
	}

	var req designation.UpdateDesignationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDesignation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	resp, err := m.masterService.UpdateDesignation(r.Context(), req)
	if err != nil {
		slog.Error("UpdateDesignation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Designation updated", resp)
}

func (m *MasterHandlerImpl) DeleteDesignation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Designation ID is required", nil)
		return
	}

	if err := m.masterService.DeleteDesignation(r.Context(), id); err != nil {
		slog.Error("DeleteDesignation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Designation deleted", nil)
}
