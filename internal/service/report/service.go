package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/storage"
)

// ReportService renders attendance exports. The CSV is both returned to the
// caller and archived in file storage under exports/.
type ReportService interface {
	ExportAttendanceCSV(ctx context.Context, filter attendance.AttendanceFilter) ([]byte, string, error)
}

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	fileStorage storage.FileStorage
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, fileStorage storage.FileStorage) ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		fileStorage:          fileStorage,
	}
}

// ExportAttendanceCSV implements ReportService. Pagination is widened so the
// export covers everything the filter matches, not one page of it.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, filter attendance.AttendanceFilter) ([]byte, string, error) {
	if err := filter.Validate(); err != nil {
		return nil, "", err
	}
	filter.Page = 1
	filter.Limit = exportBatchSize

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"employee_id", "employee_name", "date", "check_in", "check_out",
		"status", "total_hours", "regular_hours", "overtime_hours", "break_hours", "notes",
	}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for {
		records, total, err := s.AttendanceRepository.List(ctx, filter)
		if err != nil {
			return nil, "", fmt.Errorf("failed to list attendance for export: %w", err)
		}

		for _, record := range records {
			if err := w.Write(csvRow(record)); err != nil {
				return nil, "", fmt.Errorf("failed to write csv row: %w", err)
			}
		}

		if int64(filter.Page*filter.Limit) >= total {
			break
		}
		filter.Page++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := fmt.Sprintf("attendance-%s.csv", time.Now().UTC().Format("20060102-150405"))

	if _, err := s.fileStorage.Upload(ctx, bytes.NewReader(buf.Bytes()), "exports/"+filename, "text/csv"); err != nil {
		return nil, "", fmt.Errorf("failed to archive export: %w", err)
	}

	return buf.Bytes(), filename, nil
}

const exportBatchSize = 100

func csvRow(record attendance.Attendance) []string {
	name := ""
	if record.EmployeeName != nil {
		name = *record.EmployeeName
	}
	return []string{
		record.EmployeeID,
		name,
		record.Date.Format("2006-01-02"),
		formatTime(record.CheckIn),
		formatTime(record.CheckOut),
		string(record.Status),
		formatHours(record.TotalHours),
		formatHours(record.RegularHours),
		formatHours(record.OvertimeHours),
		formatHours(record.BreakHours),
		formatNotes(record.Notes),
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatHours(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatNotes(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
