package attendance

import "time"

// Status of an attendance record for one employee-day.
type Status string

const (
	StatusPresent    Status = "PRESENT"
	StatusAbsent     Status = "ABSENT"
	StatusLate       Status = "LATE"
	StatusEarlyLeave Status = "EARLY_LEAVE"
	StatusHalfDay    Status = "HALF_DAY"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLate, StatusEarlyLeave, StatusHalfDay:
		return true
	}
	return false
}

// Attendance is one record per employee per calendar day. The hour fields are
// derived, never written by callers directly; they stay nil until both
// timestamps are present.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckIn       *time.Time
	CheckOut      *time.Time
	Status        Status
	TotalHours    *float64
	RegularHours  *float64
	OvertimeHours *float64
	BreakHours    *float64
	Latitude      *float64
	Longitude     *float64

	// SelfieURL is the check-in photo; the check-out photo gets its own column.
	SelfieURL         *string
	CheckOutSelfieURL *string
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName *string
}
