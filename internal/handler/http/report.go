package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	reportService "github.com/workpulse/workpulse-backend-go/internal/service/report"
)

type ReportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService reportService.ReportService
}

func NewReportHandler(svc reportService.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: svc}
}

// ExportAttendance implements ReportHandler. Unlike the JSON endpoints this
// streams the CSV file itself.
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	payload, filename, err := h.reportService.ExportAttendanceCSV(r.Context(), parseAttendanceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		slog.Error("Failed to write export body", "filename", filename, "error", err)
	}
}
