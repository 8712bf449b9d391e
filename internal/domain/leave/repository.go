package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, req LeaveRequest) error
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)
	ListForEmployee(ctx context.Context, employeeID string, filter LeaveFilter) ([]LeaveRequest, int64, error)
	// HasOverlap reports whether the employee already has a non-rejected
	// request intersecting [start, end].
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}
