package leave

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
	auditService "github.com/workpulse/workpulse-backend-go/internal/service/audit"
)

type LeaveService interface {
	// Request files a leave request for the authenticated employee.
	Request(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	// Approve / Reject settle a pending request; both are terminal.
	Approve(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error)
	Reject(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error)
	Get(ctx context.Context, id string) (leave.LeaveResponse, error)
	List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error)
	ListMine(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error)
}

type LeaveServiceImpl struct {
	leave.LeaveRepository
	auditor auditService.Recorder
}

func NewLeaveService(leaveRepo leave.LeaveRepository, auditor auditService.Recorder) LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepo,
		auditor:         auditor,
	}
}

// Request implements LeaveService.
func (s *LeaveServiceImpl) Request(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	overlap, err := s.LeaveRepository.HasOverlap(ctx, employeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	if overlap {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.LeaveRepository.Create(ctx, leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Type:       strings.ToUpper(req.Type),
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.RequestPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.auditor.Record(ctx, "leave.request", "leave_request", created.ID,
		fmt.Sprintf("%s %s to %s", created.Type, req.StartDate, req.EndDate))

	return mapLeaveToResponse(created), nil
}

// Approve implements LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	return s.review(ctx, req, leave.RequestApproved, "leave.approve")
}

// Reject implements LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	return s.review(ctx, req, leave.RequestRejected, "leave.reject")
}

func (s *LeaveServiceImpl) review(ctx context.Context, req leave.ReviewLeaveRequest, status leave.RequestStatus, action string) (leave.LeaveResponse, error) {
	found, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if found.Status != leave.RequestPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	reviewerID, err := userIDFromClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	now := time.Now().UTC()
	found.Status = status
	found.ReviewedBy = &reviewerID
	found.ReviewedAt = &now
	found.ReviewNote = req.Note

	if err := s.LeaveRepository.Update(ctx, found); err != nil {
		return leave.LeaveResponse{}, err
	}

	s.auditor.Record(ctx, action, "leave_request", found.ID, string(status))

	return mapLeaveToResponse(found), nil
}

// Get implements LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	found, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapLeaveToResponse(found), nil
}

// List implements LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return buildListResponse(requests, total, filter), nil
}

// ListMine implements LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := s.LeaveRepository.ListForEmployee(ctx, employeeID, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return buildListResponse(requests, total, filter), nil
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

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("missing user_id claim")
	}
	return userID, nil
}

func mapLeaveToResponse(req leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Type:         req.Type,
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Reason:       req.Reason,
		Status:       string(req.Status),
		ReviewedBy:   req.ReviewedBy,
		ReviewNote:   req.ReviewNote,
		CreatedAt:    req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func buildListResponse(requests []leave.LeaveRequest, total int64, filter leave.LeaveFilter) leave.ListLeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapLeaveToResponse(req))
	}

	return leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Requests:   responses,
	}
}
