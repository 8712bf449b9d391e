package payroll

import "time"

type Payroll struct {
	ID             string
	EmployeeID     string
	PeriodYear     int
	PeriodMonth    int
	RegularHours   float64
	OvertimeHours  float64
	HourlyRate     float64
	BaseAmount     float64
	OvertimeAmount float64
	TotalAmount    float64
	GeneratedAt    time.Time

	// DTO
	EmployeeName *string
}
