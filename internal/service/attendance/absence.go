package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
)

// AbsenceMarker backfills ABSENT records for active employees who produced no
// attendance row on a given day. It runs from the scheduler after the day has
// closed in the application timezone.
type AbsenceMarker struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
}

func NewAbsenceMarker(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) *AbsenceMarker {
	return &AbsenceMarker{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
	}
}

// Run marks absences for the previous local day.
func (m *AbsenceMarker) Run(ctx context.Context) error {
	yesterday := time.Now().In(m.loc).AddDate(0, 0, -1)
	return m.MarkForDate(ctx, dateOf(yesterday))
}

// MarkForDate creates ABSENT records for every active employee without a
// record on date. Races with a late mark lose against the unique constraint
// and are skipped quietly.
func (m *AbsenceMarker) MarkForDate(ctx context.Context, date time.Time) error {
	activeIDs, err := m.employeeRepo.ListActiveIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	recordedIDs, err := m.attendanceRepo.ListEmployeeIDsWithRecord(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to list recorded employees: %w", err)
	}

	recorded := make(map[string]struct{}, len(recordedIDs))
	for _, id := range recordedIDs {
		recorded[id] = struct{}{}
	}

	var marked int
	for _, employeeID := range activeIDs {
		if _, ok := recorded[employeeID]; ok {
			continue
		}

		_, err := m.attendanceRepo.Create(ctx, attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Date:       date,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			if err == attendance.ErrAlreadyCheckedIn {
				continue
			}
			return fmt.Errorf("failed to mark absence for %s: %w", employeeID, err)
		}
		marked++
	}

	slog.Info("Absence marking finished", "date", date.Format("2006-01-02"), "marked", marked)
	return nil
}
