package leave

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       string // ANNUAL, SICK, UNPAID
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     RequestStatus
	ReviewedBy *string
	ReviewedAt *time.Time
	ReviewNote *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
