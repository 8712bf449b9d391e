package employee

import (
	"strings"

	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	HourlyRate float64 `json:"hourly_rate"`
	HireDate   string  `json:"hire_date"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if _, valid := validator.IsValidDate(r.HireDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string   `json:"-"`
	FullName   *string  `json:"full_name,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Position   *string  `json:"position,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	Active     *bool    `json:"active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Search *string `json:"search,omitempty"` // matches full_name or position
	Active *bool   `json:"active,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // full_name, hire_date, position
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *EmployeeFilter) Validate() error {
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

	if f.SortBy != "" {
		validSortFields := []string{"full_name", "hire_date", "position"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: full_name, hire_date, position",
			})
		}
	} else {
		f.SortBy = "full_name"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "asc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	HourlyRate float64 `json:"hourly_rate"`
	HireDate   string  `json:"hire_date"`
	Active     bool    `json:"active"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
