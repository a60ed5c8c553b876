package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/leave"
	"github.com/staffline/staffline-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	GetMyLeaves(w http.ResponseWriter, r *http.Request)
	GetPendingApprovals(w http.ResponseWriter, r *http.Request)
	GetCompanyLeaves(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)

	CreatePolicy(w http.ResponseWriter, r *http.Request)
	ListPolicies(w http.ResponseWriter, r *http.Request)
	UpdatePolicy(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := l.leaveService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// GetMyLeaves implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyLeaves(w http.ResponseWriter, r *http.Request) {
	resp, err := l.leaveService.GetMyLeaves(r.Context())
	if err != nil {
		slog.Error("GetMyLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetPendingApprovals implements LeaveHandler.
func (l *LeaveHandlerImpl) GetPendingApprovals(w http.ResponseWriter, r *http.Request) {
	resp, err := l.leaveService.GetPendingApprovals(r.Context())
	if err != nil {
		slog.Error("GetPendingApprovals service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetCompanyLeaves implements LeaveHandler.
func (l *LeaveHandlerImpl) GetCompanyLeaves(w http.ResponseWriter, r *http.Request) {
	resp, err := l.leaveService.GetCompanyLeaves(r.Context())
	if err != nil {
		slog.Error("GetCompanyLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateStatus implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	var req leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := l.leaveService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+resp.Status, resp)
}

// CreatePolicy implements LeaveHandler.
func (l *LeaveHandlerImpl) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	var req leave.CreatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePolicy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := l.leaveService.CreatePolicy(r.Context(), req)
	if err != nil {
		slog.Error("CreatePolicy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave policy created", resp)
}

// ListPolicies implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPolicies(w http.ResponseWriter, r *http.Request) {
	resp, err := l.leaveService.ListPolicies(r.Context())
	if err != nil {
		slog.Error("ListPolicies service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdatePolicy implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Policy ID is required", nil)
		return
	}

	var req leave.UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePolicy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	resp, err := l.leaveService.UpdatePolicy(r.Context(), req)
	if err != nil {
		slog.Error("UpdatePolicy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave policy updated", resp)
}
