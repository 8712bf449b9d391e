package attendance

import (
	"mime/multipart"
	"strings"

	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

// MarkAttendanceRequest is the HR-facing mark endpoint. On first mark for a
// date it creates the record; on a later mark it may only complete the
// missing timestamp.
type MarkAttendanceRequest struct {
	EmployeeID          string   `json:"employee_id"`
	Date                string   `json:"date"`                // YYYY-MM-DD
	CheckIn             *string  `json:"check_in,omitempty"`  // RFC3339
	CheckOut            *string  `json:"check_out,omitempty"` // RFC3339
	Status              string   `json:"status"`
	ManualOvertimeHours *float64 `json:"manual_overtime_hours,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PRESENT, ABSENT, LATE, EARLY_LEAVE, HALF_DAY",
		})
	}

	var checkIn, checkOut *string
	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, valid := validator.IsValidDateTime(*r.CheckIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an RFC3339 timestamp",
			})
		} else {
			checkIn = r.CheckIn
		}
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, valid := validator.IsValidDateTime(*r.CheckOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an RFC3339 timestamp",
			})
		} else {
			checkOut = r.CheckOut
		}
	}

	// The calculator never validates ordering; the boundary does.
	if checkIn != nil && checkOut != nil {
		in, _ := validator.IsValidDateTime(*checkIn)
		out, _ := validator.IsValidDateTime(*checkOut)
		if out.Before(in) {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must not be earlier than check_in",
			})
		}
	}

	if r.ManualOvertimeHours != nil {
		if *r.ManualOvertimeHours < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "manual_overtime_hours",
				Message: "manual_overtime_hours must not be negative",
			})
		} else if *r.ManualOvertimeHours > 24 {
			errs = append(errs, validator.ValidationError{
				Field:   "manual_overtime_hours",
				Message: "manual_overtime_hours must not exceed 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SelfCheckRequest drives both self check-in and self check-out: a selfie
// photo and a geolocation are mandatory, enforced here rather than in the
// time accounting itself.
type SelfCheckRequest struct {
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	SelfieURL  *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *SelfCheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "selfie photo is required",
		})
	} else {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "selfie photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest lets HR overwrite a record directly. This path
// recomputes the plain total only, not the break/overtime derivation.
type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in,omitempty"`  // RFC3339
	CheckOut *string `json:"check_out,omitempty"` // RFC3339
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, valid := validator.IsValidDateTime(*r.CheckIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an RFC3339 timestamp",
			})
		}
	}

	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, valid := validator.IsValidDateTime(*r.CheckOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an RFC3339 timestamp",
			})
		}
	}

	if r.Status != nil && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PRESENT, ABSENT, LATE, EARLY_LEAVE, HALF_DAY",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      *string  `json:"employee_name,omitempty"`
	Date              string   `json:"date"`
	CheckIn           *string  `json:"check_in,omitempty"`
	CheckOut          *string  `json:"check_out,omitempty"`
	Status            string   `json:"status"`
	TotalHours        *float64 `json:"total_hours,omitempty"`
	RegularHours      *float64 `json:"regular_hours,omitempty"`
	OvertimeHours     *float64 `json:"overtime_hours,omitempty"`
	BreakHours        *float64 `json:"break_hours,omitempty"`
	SelfieURL         *string  `json:"selfie_url,omitempty"`
	CheckOutSelfieURL *string  `json:"check_out_selfie_url,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

type AttendanceFilter struct {
	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // date, employee_name, check_in, check_out, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *AttendanceFilter) Validate() error {
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

	if f.Status != nil && !IsValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PRESENT, ABSENT, LATE, EARLY_LEAVE, HALF_DAY",
		})
	}

	for field, value := range map[string]*string{
		"date":       f.Date,
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

	if f.SortBy != "" {
		validSortFields := []string{"date", "employee_name", "check_in", "check_out", "status"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, employee_name, check_in, check_out, status",
			})
		}
	} else {
		f.SortBy = "date"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyAttendanceFilter struct {
	Date      *string `json:"date,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Status    *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

func (f *MyAttendanceFilter) Validate() error {
	full := AttendanceFilter{
		Date:      f.Date,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Status:    f.Status,
		Page:      f.Page,
		Limit:     f.Limit,
		SortBy:    f.SortBy,
		SortOrder: f.SortOrder,
	}
	if err := full.Validate(); err != nil {
		return err
	}
	f.Page = full.Page
	f.Limit = full.Limit
	f.SortBy = full.SortBy
	f.SortOrder = full.SortOrder
	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
