package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/staffline/staffline-backend-go/internal/domain/company"
	"github.com/staffline/staffline-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// GetMe implements CompanyHandler.
func (c *CompanyHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	resp, err := c.companyService.GetMe(r.Context())
	if err != nil {
		slog.Error("GetMe service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateMe implements CompanyHandler.
func (c *CompanyHandlerImpl) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMe decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := c.companyService.UpdateMe(r.Context(), req)
	if err != nil {
		slog.Error("UpdateMe service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company profile updated", resp)
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := c.companyService.List(r.Context())
	if err != nil {
		slog.Error("List companies service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := c.companyService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created", resp)
}
