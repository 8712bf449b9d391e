package shift

import (
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name         string `json:"name"`
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	GraceMinutes int    `json:"grace_minutes"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.GraceMinutes < 0 || r.GraceMinutes > 120 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must be between 0 and 120",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	GraceMinutes *int    `json:"grace_minutes,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.StartTime != nil && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if r.EndTime != nil && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.GraceMinutes != nil && (*r.GraceMinutes < 0 || *r.GraceMinutes > 120) {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must be between 0 and 120",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignShiftRequest struct {
	EmployeeID    string `json:"employee_id"`
	ShiftID       string `json:"shift_id"`
	EffectiveFrom string `json:"effective_from"` // YYYY-MM-DD
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.EffectiveFrom); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	GraceMinutes int    `json:"grace_minutes"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type AssignmentResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	ShiftID       string  `json:"shift_id"`
	ShiftName     *string `json:"shift_name,omitempty"`
	EffectiveFrom string  `json:"effective_from"`
}
