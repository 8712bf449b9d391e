package attendance

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpulse/workpulse-backend-go/internal/config"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/storage"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records map[string]attendance.Attendance // employeeID|date
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := recordKey(att.EmployeeID, att.Date)
	if _, exists := r.records[key]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	r.records[key] = att
	return att, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	att, ok := r.records[recordKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &att, nil
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	for key, existing := range r.records {
		if existing.ID == att.ID {
			att.CreatedAt = existing.CreatedAt
			att.UpdatedAt = time.Now()
			r.records[key] = att
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
}

func (fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, FullName: "Test Employee", Active: true}, nil
}

type fakeShiftRepo struct {
	shift.ShiftRepository
}

func (fakeShiftRepo) GetActiveForEmployee(ctx context.Context, employeeID string, on time.Time) (*shift.Shift, error) {
	return nil, nil
}

type fakeStorage struct {
	storage.FileStorage
}

func (fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	return path, nil
}

type noopRecorder struct{}

func (noopRecorder) Record(ctx context.Context, action, entity, entityID, detail string) {}

type selfieFile struct {
	*bytes.Reader
}

func (selfieFile) Close() error { return nil }

func newTestService(repo *fakeAttendanceRepo) attendance.AttendanceService {
	return NewAttendanceService(
		repo,
		fakeEmployeeRepo{},
		fakeShiftRepo{},
		fakeStorage{},
		noopRecorder{},
		config.OfficeConfig{Latitude: 0, Longitude: 0, RadiusMeters: 100},
		time.UTC,
	)
}

func claimsContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": employeeID,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func selfCheckRequest() attendance.SelfCheckRequest {
	return attendance.SelfCheckRequest{
		Latitude:   0,
		Longitude:  0,
		File:       selfieFile{bytes.NewReader([]byte("jpeg-bytes"))},
		FileHeader: &multipart.FileHeader{Filename: "selfie.jpg", Size: 10},
	}
}

func strPtr(s string) *string { return &s }

func TestMark_FirstMarkCreatesRecord(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	resp, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		CheckIn:    strPtr("2025-03-10T09:00:00Z"),
		Status:     "PRESENT",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "PRESENT", resp.Status)
	require.NotNil(t, resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	assert.Nil(t, resp.TotalHours)
	assert.Len(t, repo.records, 1)
}

func TestMark_DuplicateCheckInRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	first := attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		CheckIn:    strPtr("2025-03-10T09:00:00Z"),
		Status:     "PRESENT",
	}
	_, err := svc.Mark(context.Background(), first)
	require.NoError(t, err)

	_, err = svc.Mark(context.Background(), first)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestMark_CheckOutOnCompletedRecordRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		CheckIn:    strPtr("2025-03-10T09:00:00Z"),
		CheckOut:   strPtr("2025-03-10T18:00:00Z"),
		Status:     "PRESENT",
	})
	require.NoError(t, err)

	_, err = svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		CheckOut:   strPtr("2025-03-10T19:00:00Z"),
		Status:     "PRESENT",
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestMark_NothingNewReportsStateConflict(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		CheckIn:    strPtr("2025-03-10T09:00:00Z"),
		Status:     "PRESENT",
	})
	require.NoError(t, err)

	// Open record, no timestamps supplied: the check-in is the duplicate.
	_, err = svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		Status:     "PRESENT",
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	_, err = svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		CheckOut:   strPtr("2025-03-10T18:00:00Z"),
		Status:     "PRESENT",
	})
	require.NoError(t, err)

	// Completed record, no timestamps supplied: the check-out wins.
	_, err = svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		Status:     "PRESENT",
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestMark_CompletionRecomputesHours(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	_, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		CheckIn:    strPtr("2025-03-10T09:00:00Z"),
		Status:     "PRESENT",
	})
	require.NoError(t, err)

	resp, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
		CheckOut:   strPtr("2025-03-10T18:00:00Z"),
		Status:     "PRESENT",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.TotalHours)
	assert.InDelta(t, 9.0, *resp.TotalHours, 1e-9)
	assert.InDelta(t, 1.0, *resp.BreakHours, 1e-9)
	assert.InDelta(t, 8.0, *resp.RegularHours, 1e-9)
	assert.InDelta(t, 0.0, *resp.OvertimeHours, 1e-9)
}

func TestSelfCheckIn_SecondCheckInRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := claimsContext(t, "emp-1")

	_, err := svc.SelfCheckIn(ctx, selfCheckRequest())
	require.NoError(t, err)

	_, err = svc.SelfCheckIn(ctx, selfCheckRequest())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestSelfCheckIn_OutsideRadiusRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := claimsContext(t, "emp-1")

	req := selfCheckRequest()
	req.Latitude = 10 // far outside the 100m office radius

	_, err := svc.SelfCheckIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)
}

func TestSelfCheckOut_WithoutCheckInRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := claimsContext(t, "emp-1")

	_, err := svc.SelfCheckOut(ctx, selfCheckRequest())
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestSelfCheckOut_SecondCheckOutRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := claimsContext(t, "emp-1")

	_, err := svc.SelfCheckIn(ctx, selfCheckRequest())
	require.NoError(t, err)

	_, err = svc.SelfCheckOut(ctx, selfCheckRequest())
	require.NoError(t, err)

	_, err = svc.SelfCheckOut(ctx, selfCheckRequest())
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestSelfCheckOut_KeepsCheckInSelfie(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := claimsContext(t, "emp-1")

	in, err := svc.SelfCheckIn(ctx, selfCheckRequest())
	require.NoError(t, err)
	require.NotNil(t, in.SelfieURL)
	assert.Nil(t, in.CheckOutSelfieURL)

	out, err := svc.SelfCheckOut(ctx, selfCheckRequest())
	require.NoError(t, err)

	require.NotNil(t, out.SelfieURL)
	require.NotNil(t, out.CheckOutSelfieURL)
	assert.Equal(t, *in.SelfieURL, *out.SelfieURL)
	assert.NotEqual(t, *out.SelfieURL, *out.CheckOutSelfieURL)
	assert.Contains(t, *out.SelfieURL, "-in")
	assert.Contains(t, *out.CheckOutSelfieURL, "-out")
}
