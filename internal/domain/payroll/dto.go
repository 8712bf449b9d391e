package payroll

import (
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Month      *int    `json:"month,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *PayrollFilter) Validate() error {
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

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	PeriodYear     int     `json:"period_year"`
	PeriodMonth    int     `json:"period_month"`
	RegularHours   float64 `json:"regular_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	HourlyRate     float64 `json:"hourly_rate"`
	BaseAmount     float64 `json:"base_amount"`
	OvertimeAmount float64 `json:"overtime_amount"`
	TotalAmount    float64 `json:"total_amount"`
	GeneratedAt    string  `json:"generated_at"`
}

type ListPayrollResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Payrolls   []PayrollResponse `json:"payrolls"`
}

type GeneratePayrollResponse struct {
	Generated int               `json:"generated"`
	Skipped   int               `json:"skipped"`
	Payrolls  []PayrollResponse `json:"payrolls"`
}
