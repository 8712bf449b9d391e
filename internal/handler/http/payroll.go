package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	payrollService "github.com/workpulse/workpulse-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payrollService.PayrollService
}

func NewPayrollHandler(svc payrollService.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: svc}
}

// Generate implements PayrollHandler.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", result)
}

// Get implements PayrollHandler.
func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PayrollHandler.
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var year, month *int
	if raw := q.Get("year"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			year = &parsed
		}
	}
	if raw := q.Get("month"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			month = &parsed
		}
	}

	filter := payroll.PayrollFilter{
		EmployeeID: queryString(q.Get("employee_id")),
		Year:       year,
		Month:      month,
		Page:       queryInt(q.Get("page")),
		Limit:      queryInt(q.Get("limit")),
	}

	result, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
