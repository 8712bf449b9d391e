package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	leaveService "github.com/workpulse/workpulse-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leaveService.LeaveService
}

func NewLeaveHandler(svc leaveService.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: svc}
}

// Request implements LeaveHandler.
func (h *leaveHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request filed", result)
}

// Approve implements LeaveHandler.
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.leaveService.Approve, "Leave request approved")
}

// Reject implements LeaveHandler.
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.leaveService.Reject, "Leave request rejected")
}

func (h *leaveHandlerImpl) review(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error),
	message string,
) {
	var req leave.ReviewLeaveRequest
	// A body is optional; an empty review note is fine.
	_ = json.NewDecoder(r.Body).Decode(&req)
	req.ID = chi.URLParam(r, "id")

	result, err := fn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}

// Get implements LeaveHandler.
func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements LeaveHandler.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.List(r.Context(), parseLeaveFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements LeaveHandler.
func (h *leaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListMine(r.Context(), parseLeaveFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parseLeaveFilter(r *http.Request) leave.LeaveFilter {
	q := r.URL.Query()
	return leave.LeaveFilter{
		EmployeeID: queryString(q.Get("employee_id")),
		Status:     queryString(q.Get("status")),
		StartDate:  queryString(q.Get("start_date")),
		EndDate:    queryString(q.Get("end_date")),
		Page:       queryInt(q.Get("page")),
		Limit:      queryInt(q.Get("limit")),
	}
}
