package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oijdod/hrms-backend-go/internal/domain/salary"
	"github.com/oijdod/hrms-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CalculatePayroll(w http.ResponseWriter, r *http.Request)
	GeneratePayslip(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// Save implements SalaryHandler.
func (h *SalaryHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req salary.SaveSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.salaryService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure saved successfully", resp)
}

// Get implements SalaryHandler.
func (h *SalaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := h.salaryService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements SalaryHandler.
func (h *SalaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	structures, err := h.salaryService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, structures)
}

// Delete implements SalaryHandler.
func (h *SalaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.salaryService.Delete(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure deleted successfully", nil)
}

// CalculatePayroll implements SalaryHandler.
func (h *SalaryHandlerImpl) CalculatePayroll(w http.ResponseWriter, r *http.Request) {
	var req salary.PayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CalculatePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.salaryService.CalculatePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GeneratePayslip implements SalaryHandler.
func (h *SalaryHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	var req salary.PayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GeneratePayslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	url, err := h.salaryService.GeneratePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip generated successfully", map[string]string{
		"payslip_url": url,
	})
}
