package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// List implements PayrollHandler.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p := parseListParams(r)
	req := payroll.ListPayrollRequest{
		Search: p.search,
		Status: p.facet(payroll.FieldStatus),
		Month:  p.facet(payroll.FieldMonth),
		Page:   p.page,
		Limit:  p.limit,
	}

	result, err := h.payrollService.ListRecords(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, result, result.Meta)
}

// Process implements PayrollHandler.
func (h *payrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("ProcessPayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Process(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll processed successfully", result)
}

// Payslip implements PayrollHandler.
func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	slip, err := h.payrollService.Payslip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, slip)
}

// Dashboard implements PayrollHandler.
func (h *payrollHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.payrollService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dashboard)
}
