package leave

import (
	"strings"

	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	Type      string `json:"type"`       // ANNUAL, SICK, UNPAID
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	validTypes := []string{"ANNUAL", "SICK", "UNPAID"}
	if !validator.IsInSlice(strings.ToUpper(r.Type), validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: ANNUAL, SICK, UNPAID",
		})
	}

	start, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endValid := validator.IsValidDate(r.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startValid && endValid && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be earlier than start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewLeaveRequest struct {
	ID   string  `json:"-"`
	Note *string `json:"note,omitempty"`
}

type LeaveFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{"PENDING", "APPROVED", "REJECTED"}
		if !validator.IsInSlice(strings.ToUpper(*f.Status), validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: PENDING, APPROVED, REJECTED",
			})
		}
	}

	for field, value := range map[string]*string{
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ReviewedBy   *string `json:"reviewed_by,omitempty"`
	ReviewNote   *string `json:"review_note,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type ListLeaveResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Requests   []LeaveResponse `json:"requests"`
}
