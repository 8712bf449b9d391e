package attendance

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/config"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/storage"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/utils"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
	auditService "github.com/workpulse/workpulse-backend-go/internal/service/audit"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	shiftRepo   shift.ShiftRepository
	fileStorage storage.FileStorage
	auditor     auditService.Recorder
	office      config.OfficeConfig
	loc         *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	fileStorage storage.FileStorage,
	auditor auditService.Recorder,
	office config.OfficeConfig,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		shiftRepo:            shiftRepo,
		fileStorage:          fileStorage,
		auditor:              auditor,
		office:               office,
		loc:                  loc,
	}
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	checkIn := parseTimestamp(req.CheckIn)
	checkOut := parseTimestamp(req.CheckOut)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	var record attendance.Attendance
	if existing == nil {
		record = attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			Date:       date,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Notes:      req.Notes,
		}
		record.Status = DeriveStatus(attendance.Status(req.Status), s.localized(record.CheckIn))
		applyHours(&record, ComputeHours(record.CheckIn, record.CheckOut, req.ManualOvertimeHours))

		// The (employee_id, date) unique constraint settles concurrent first
		// marks; the loser comes back as ErrAlreadyCheckedIn.
		record, err = s.AttendanceRepository.Create(ctx, record)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}

		s.auditor.Record(ctx, "attendance.mark", "attendance", record.ID,
			fmt.Sprintf("marked %s for employee %s on %s", record.Status, emp.ID, req.Date))

		record.EmployeeName = &emp.FullName
		return mapAttendanceToResponse(record), nil
	}

	// Completion: only a timestamp the record does not have yet may be added.
	record = *existing
	supplied := false

	if checkIn != nil {
		if record.CheckIn != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		record.CheckIn = checkIn
		supplied = true
	}
	if checkOut != nil {
		if record.CheckOut != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
		}
		record.CheckOut = checkOut
		supplied = true
	}

	if !supplied {
		if record.CheckOut != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	if record.CheckIn != nil && record.CheckOut != nil && record.CheckOut.Before(*record.CheckIn) {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "check_out",
			Message: "check_out must not be earlier than check_in",
		}}
	}

	if req.Notes != nil {
		record.Notes = req.Notes
	}

	record.Status = DeriveStatus(attendance.Status(req.Status), s.localized(record.CheckIn))
	applyHours(&record, ComputeHours(record.CheckIn, record.CheckOut, req.ManualOvertimeHours))

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	s.auditor.Record(ctx, "attendance.mark", "attendance", record.ID,
		fmt.Sprintf("completed record for employee %s on %s", emp.ID, req.Date))

	record.EmployeeName = &emp.FullName
	return mapAttendanceToResponse(record), nil
}

// SelfCheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SelfCheckIn(ctx context.Context, req attendance.SelfCheckRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.checkGeofence(req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().In(s.loc)
	date := dateOf(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	selfieURL, err := s.uploadSelfie(ctx, employeeID, date, "in", req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	requested, err := s.checkInStatus(ctx, employeeID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    &now,
		Status:     DeriveStatus(requested, &now),
		Latitude:   &req.Latitude,
		Longitude:  &req.Longitude,
		SelfieURL:  &selfieURL,
	}

	record, err = s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.auditor.Record(ctx, "attendance.check_in", "attendance", record.ID,
		fmt.Sprintf("self check-in at %s", now.Format(time.RFC3339)))

	return mapAttendanceToResponse(record), nil
}

// SelfCheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SelfCheckOut(ctx context.Context, req attendance.SelfCheckRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.checkGeofence(req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().In(s.loc)
	date := dateOf(now)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if existing == nil || existing.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	selfieURL, err := s.uploadSelfie(ctx, employeeID, date, "out", req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := *existing
	record.CheckOut = &now
	record.CheckOutSelfieURL = &selfieURL

	requested, err := s.checkOutStatus(ctx, employeeID, record.Status, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	record.Status = DeriveStatus(requested, s.localized(record.CheckIn))
	applyHours(&record, ComputeHours(record.CheckIn, record.CheckOut, nil))

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	s.auditor.Record(ctx, "attendance.check_out", "attendance", record.ID,
		fmt.Sprintf("self check-out at %s", now.Format(time.RFC3339)))

	return mapAttendanceToResponse(record), nil
}

// Update implements attendance.AttendanceService. This path overwrites fields
// directly and recomputes the plain total only; break, regular and overtime
// keep whatever the last full derivation produced.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if t := parseTimestamp(req.CheckIn); t != nil {
		record.CheckIn = t
	}
	if t := parseTimestamp(req.CheckOut); t != nil {
		record.CheckOut = t
	}
	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if record.CheckIn != nil && record.CheckOut != nil {
		total := record.CheckOut.Sub(*record.CheckIn).Hours()
		record.TotalHours = &total
	}

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	s.auditor.Record(ctx, "attendance.update", "attendance", record.ID, "record overwritten")

	return mapAttendanceToResponse(record), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapAttendanceToResponse(record), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return buildListResponse(records, total, filter.Page, filter.Limit), nil
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.AttendanceRepository.ListForEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return buildListResponse(records, total, filter.Page, filter.Limit), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.AttendanceRepository.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	s.auditor.Record(ctx, "attendance.delete", "attendance", record.ID,
		fmt.Sprintf("deleted record for employee %s on %s", record.EmployeeID, record.Date.Format("2006-01-02")))

	return nil
}

func (s *AttendanceServiceImpl) checkGeofence(lat, lon float64) error {
	distance := utils.HaversineDistance(lat, lon, s.office.Latitude, s.office.Longitude)
	if distance > s.office.RadiusMeters {
		return attendance.ErrOutsideAllowedRadius
	}
	return nil
}

// checkInStatus resolves the requested status before the half-day rule runs:
// past the assigned shift's start plus grace means LATE, otherwise PRESENT.
func (s *AttendanceServiceImpl) checkInStatus(ctx context.Context, employeeID string, now time.Time) (attendance.Status, error) {
	sh, err := s.shiftRepo.GetActiveForEmployee(ctx, employeeID, dateOf(now))
	if err != nil {
		return "", fmt.Errorf("failed to resolve shift: %w", err)
	}
	if sh == nil {
		return attendance.StatusPresent, nil
	}

	start, err := clockOn(now, sh.StartTime)
	if err != nil {
		return "", err
	}
	if now.After(start.Add(time.Duration(sh.GraceMinutes) * time.Minute)) {
		return attendance.StatusLate, nil
	}
	return attendance.StatusPresent, nil
}

// checkOutStatus flags EARLY_LEAVE when the caller leaves before the assigned
// shift's end; LATE sticks if already set.
func (s *AttendanceServiceImpl) checkOutStatus(ctx context.Context, employeeID string, current attendance.Status, now time.Time) (attendance.Status, error) {
	sh, err := s.shiftRepo.GetActiveForEmployee(ctx, employeeID, dateOf(now))
	if err != nil {
		return "", fmt.Errorf("failed to resolve shift: %w", err)
	}
	if sh == nil || current == attendance.StatusLate {
		return current, nil
	}

	end, err := clockOn(now, sh.EndTime)
	if err != nil {
		return "", err
	}
	if now.Before(end) {
		return attendance.StatusEarlyLeave, nil
	}
	return current, nil
}

func (s *AttendanceServiceImpl) uploadSelfie(ctx context.Context, employeeID string, date time.Time, direction string, req attendance.SelfCheckRequest) (string, error) {
	ext := strings.ToLower(filepath.Ext(req.FileHeader.Filename))
	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	path := fmt.Sprintf("selfies/%s/%s-%s%s", employeeID, date.Format("2006-01-02"), direction, ext)
	url, err := s.fileStorage.Upload(ctx, req.File, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload selfie: %w", err)
	}
	return url, nil
}

// localized shifts a timestamp into the application timezone so the half-day
// cutoff reads the intended wall clock.
func (s *AttendanceServiceImpl) localized(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	l := t.In(s.loc)
	return &l
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", employee.ErrEmployeeNotFound
	}
	return employeeID, nil
}

func parseTimestamp(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil
	}
	return &t
}

// dateOf normalizes a timestamp to its calendar day, midnight UTC, which is
// the canonical key for the one-record-per-employee-per-day constraint.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// clockOn places an HH:MM wall clock on the same day as ref, in ref's location.
func clockOn(ref time.Time, hhmm string) (time.Time, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid shift clock time %q", hhmm)
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, ref.Location()), nil
}

func applyHours(record *attendance.Attendance, hours *Hours) {
	if hours == nil {
		return
	}
	record.TotalHours = &hours.Total
	record.RegularHours = &hours.Regular
	record.OvertimeHours = &hours.Overtime
	record.BreakHours = &hours.Break
}

func mapAttendanceToResponse(record attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                record.ID,
		EmployeeID:        record.EmployeeID,
		EmployeeName:      record.EmployeeName,
		Date:              record.Date.Format("2006-01-02"),
		Status:            string(record.Status),
		TotalHours:        record.TotalHours,
		RegularHours:      record.RegularHours,
		OvertimeHours:     record.OvertimeHours,
		BreakHours:        record.BreakHours,
		SelfieURL:         record.SelfieURL,
		CheckOutSelfieURL: record.CheckOutSelfieURL,
		Notes:             record.Notes,
		CreatedAt:         record.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:         record.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if record.CheckIn != nil {
		v := record.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if record.CheckOut != nil {
		v := record.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}

func buildListResponse(records []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapAttendanceToResponse(record))
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}
}
