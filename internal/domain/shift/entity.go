package shift

import "time"

// Shift is a reusable template of working hours; assignments bind employees
// to a template from an effective date.
type Shift struct {
	ID           string
	Name         string
	StartTime    string // HH:MM, wall clock
	EndTime      string // HH:MM
	GraceMinutes int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Assignment struct {
	ID            string
	EmployeeID    string
	ShiftID       string
	EffectiveFrom time.Time
	CreatedAt     time.Time

	// DTO
	ShiftName    *string
	EmployeeName *string
}
