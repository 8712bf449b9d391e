package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Shift, error)

	Assign(ctx context.Context, a Assignment) (Assignment, error)
	ListAssignments(ctx context.Context, employeeID *string) ([]Assignment, error)
	// GetActiveForEmployee resolves the shift whose assignment is effective on
	// the given date, latest effective_from wins. Returns (nil, nil) when the
	// employee has no assignment yet.
	GetActiveForEmployee(ctx context.Context, employeeID string, on time.Time) (*Shift, error)
}
