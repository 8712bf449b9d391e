package attendance

import "context"

type AttendanceService interface {
	// Mark creates or completes an attendance record per the per-day state
	// machine. Adding a timestamp the record already has is a conflict.
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// SelfCheckIn / SelfCheckOut operate on the authenticated caller's own
	// employee record, with mandatory selfie and geolocation.
	SelfCheckIn(ctx context.Context, req SelfCheckRequest) (AttendanceResponse, error)
	SelfCheckOut(ctx context.Context, req SelfCheckRequest) (AttendanceResponse, error)

	// Update overwrites fields directly (HR); recomputes the plain total only.
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	ListMine(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
