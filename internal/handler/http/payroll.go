package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffline/staffline-backend-go/internal/domain/payroll"
	"github.com/staffline/staffline-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	GetMyPayouts(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (p *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := p.payrollService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("Generate payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", resp)
}

// ListByPeriod implements PayrollHandler.
func (p *PayrollHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if m := r.URL.Query().Get("month"); m != "" {
		month, _ = strconv.Atoi(m)
	}
	if y := r.URL.Query().Get("year"); y != "" {
		year, _ = strconv.Atoi(y)
	}

	resp, err := p.payrollService.ListByPeriod(r.Context(), month, year)
	if err != nil {
		slog.Error("ListByPeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MarkPaid implements PayrollHandler.
func (p *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payout ID is required", nil)
		return
	}

	resp, err := p.payrollService.MarkPaid(r.Context(), id)
	if err != nil {
		slog.Error("MarkPaid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payout marked as paid", resp)
}

// GetMyPayouts implements PayrollHandler.
func (p *PayrollHandlerImpl) GetMyPayouts(w http.ResponseWriter, r *http.Request) {
	resp, err := p.payrollService.GetMyPayouts(r.Context())
	if err != nil {
		slog.Error("GetMyPayouts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetPayslip implements PayrollHandler. The PDF is buffered so a failed
// render still gets a JSON error instead of a truncated body.
func (p *PayrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payout ID is required", nil)
		return
	}

	var buf bytes.Buffer
	if err := p.payrollService.WritePayslip(r.Context(), id, &buf); err != nil {
		slog.Error("GetPayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payslip-"+id+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("GetPayslip write error", "error", err)
	}
}
