package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// (employee_id, date) pair is unique at the database level; Create surfaces
// ErrAlreadyCheckedIn on a duplicate so concurrent first marks race at the
// store and the loser gets a conflict, never a second row.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// GetByEmployeeAndDate returns (nil, nil) when no record exists yet.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	Update(ctx context.Context, att Attendance) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	ListForEmployee(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)
	// SumHoursForPeriod totals derived regular/overtime hours per employee
	// for payroll generation.
	SumHoursForPeriod(ctx context.Context, employeeID string, from, to time.Time) (regular float64, overtime float64, err error)
	// ListEmployeeIDsWithRecord returns employees that already have a record
	// on date; the auto-absence job marks the rest ABSENT.
	ListEmployeeIDsWithRecord(ctx context.Context, date time.Time) ([]string, error)
}
