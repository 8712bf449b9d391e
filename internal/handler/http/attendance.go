package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	SelfCheckIn(w http.ResponseWriter, r *http.Request)
	SelfCheckOut(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked", result)
}

// SelfCheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) SelfCheckIn(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseSelfCheck(w, r)
	if !ok {
		return
	}
	defer req.File.Close()

	result, err := h.attendanceService.SelfCheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}

// SelfCheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) SelfCheckOut(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseSelfCheck(w, r)
	if !ok {
		return
	}
	defer req.File.Close()

	result, err := h.attendanceService.SelfCheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// parseSelfCheck reads the multipart payload shared by check-in and
// check-out: a 'data' JSON field plus a 'photo' file.
func (h *attendanceHandlerImpl) parseSelfCheck(w http.ResponseWriter, r *http.Request) (attendance.SelfCheckRequest, bool) {
	var req attendance.SelfCheckRequest

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return req, false
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return req, false
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Selfie photo is required", nil)
			return req, false
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return req, false
	}

	req.File = file
	req.FileHeader = fileHeader
	return req, true
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseAttendanceFilter(r)

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	full := parseAttendanceFilter(r)
	filter := attendance.MyAttendanceFilter{
		Date:      full.Date,
		StartDate: full.StartDate,
		EndDate:   full.EndDate,
		Status:    full.Status,
		Page:      full.Page,
		Limit:     full.Limit,
		SortBy:    full.SortBy,
		SortOrder: full.SortOrder,
	}

	result, err := h.attendanceService.ListMine(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}

func parseAttendanceFilter(r *http.Request) attendance.AttendanceFilter {
	q := r.URL.Query()

	return attendance.AttendanceFilter{
		EmployeeID:   queryString(q.Get("employee_id")),
		EmployeeName: queryString(q.Get("employee_name")),
		Date:         queryString(q.Get("date")),
		StartDate:    queryString(q.Get("start_date")),
		EndDate:      queryString(q.Get("end_date")),
		Status:       queryString(q.Get("status")),
		Page:         queryInt(q.Get("page")),
		Limit:        queryInt(q.Get("limit")),
		SortBy:       q.Get("sort_by"),
		SortOrder:    q.Get("sort_order"),
	}
}
