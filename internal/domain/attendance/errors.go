package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/check-out state conflicts
	ErrAlreadyCheckedIn     = errors.New("attendance already recorded for this day")
	ErrAlreadyCheckedOut    = errors.New("attendance already completed for this day")
	ErrNotCheckedIn         = errors.New("no check-in recorded for today")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed office radius")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEmployeeNotOwned   = errors.New("attendance record belongs to another employee")
)
