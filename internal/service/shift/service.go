package shift

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
	auditService "github.com/workpulse/workpulse-backend-go/internal/service/audit"
)

type ShiftService interface {
	Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	Get(ctx context.Context, id string) (shift.ShiftResponse, error)
	Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]shift.ShiftResponse, error)

	Assign(ctx context.Context, req shift.AssignShiftRequest) (shift.AssignmentResponse, error)
	ListAssignments(ctx context.Context, employeeID *string) ([]shift.AssignmentResponse, error)
}

type ShiftServiceImpl struct {
	shift.ShiftRepository
	employee.EmployeeRepository
	auditor auditService.Recorder
}

func NewShiftService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository, auditor auditService.Recorder) ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository:    shiftRepo,
		EmployeeRepository: employeeRepo,
		auditor:            auditor,
	}
}

// Create implements ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		ID:           uuid.NewString(),
		Name:         req.Name,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		GraceMinutes: req.GraceMinutes,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	s.auditor.Record(ctx, "shift.create", "shift", created.ID, created.Name)

	return mapShiftToResponse(created), nil
}

// Get implements ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	found, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return mapShiftToResponse(found), nil
}

// Update implements ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	found, err := s.ShiftRepository.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		found.Name = *req.Name
	}
	if req.StartTime != nil {
		found.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		found.EndTime = *req.EndTime
	}
	if req.GraceMinutes != nil {
		found.GraceMinutes = *req.GraceMinutes
	}

	if err := s.ShiftRepository.Update(ctx, found); err != nil {
		return shift.ShiftResponse{}, err
	}

	s.auditor.Record(ctx, "shift.update", "shift", found.ID, found.Name)

	return mapShiftToResponse(found), nil
}

// Delete implements ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	found, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.ShiftRepository.Delete(ctx, found.ID); err != nil {
		return err
	}

	s.auditor.Record(ctx, "shift.delete", "shift", found.ID, found.Name)

	return nil
}

// List implements ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh))
	}
	return responses, nil
}

// Assign implements ShiftService.
func (s *ShiftServiceImpl) Assign(ctx context.Context, req shift.AssignShiftRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.AssignmentResponse{}, err
	}
	if _, err := s.ShiftRepository.GetByID(ctx, req.ShiftID); err != nil {
		return shift.AssignmentResponse{}, err
	}

	effectiveFrom, _ := validator.IsValidDate(req.EffectiveFrom)

	created, err := s.ShiftRepository.Assign(ctx, shift.Assignment{
		ID:            uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		ShiftID:       req.ShiftID,
		EffectiveFrom: effectiveFrom,
	})
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	s.auditor.Record(ctx, "shift.assign", "shift_assignment", created.ID,
		fmt.Sprintf("employee %s to shift %s from %s", req.EmployeeID, req.ShiftID, req.EffectiveFrom))

	return mapAssignmentToResponse(created), nil
}

// ListAssignments implements ShiftService.
func (s *ShiftServiceImpl) ListAssignments(ctx context.Context, employeeID *string) ([]shift.AssignmentResponse, error) {
	assignments, err := s.ShiftRepository.ListAssignments(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, mapAssignmentToResponse(a))
	}
	return responses, nil
}

func mapShiftToResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:           sh.ID,
		Name:         sh.Name,
		StartTime:    sh.StartTime,
		EndTime:      sh.EndTime,
		GraceMinutes: sh.GraceMinutes,
		CreatedAt:    sh.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    sh.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapAssignmentToResponse(a shift.Assignment) shift.AssignmentResponse {
	return shift.AssignmentResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		ShiftID:       a.ShiftID,
		ShiftName:     a.ShiftName,
		EffectiveFrom: a.EffectiveFrom.Format("2006-01-02"),
	}
}
