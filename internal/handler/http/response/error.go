package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrGoogleEmailUnverified):
		Forbidden(w, "Google account email is not verified")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInsufficientPermission),
		errors.Is(err, user.ErrHRAccessRequired),
		errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Attendance already recorded for this day")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Attendance already completed for this day")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in recorded for today")
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		Forbidden(w, "You are outside the allowed office radius")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmployeeNotOwned):
		Forbidden(w, "Attendance record belongs to another employee")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave request overlaps an existing one")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll already generated for this period")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
