package employee

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
	auditService "github.com/workpulse/workpulse-backend-go/internal/service/audit"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error)
}

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	auditor auditService.Recorder
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, auditor auditService.Recorder) EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		auditor:            auditor,
	}
}

// Create implements EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		ID:         uuid.NewString(),
		FullName:   req.FullName,
		Email:      req.Email,
		Position:   req.Position,
		HourlyRate: req.HourlyRate,
		HireDate:   hireDate,
		Active:     true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditor.Record(ctx, "employee.create", "employee", created.ID, created.FullName)

	return mapEmployeeToResponse(created), nil
}

// Get implements EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(found), nil
}

// Update implements EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	found, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		found.FullName = *req.FullName
	}
	if req.Email != nil {
		found.Email = *req.Email
	}
	if req.Position != nil {
		found.Position = *req.Position
	}
	if req.HourlyRate != nil {
		found.HourlyRate = *req.HourlyRate
	}
	if req.Active != nil {
		found.Active = *req.Active
	}

	if err := s.EmployeeRepository.Update(ctx, found); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditor.Record(ctx, "employee.update", "employee", found.ID, found.FullName)

	return mapEmployeeToResponse(found), nil
}

// Delete implements EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	found, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.EmployeeRepository.Delete(ctx, found.ID); err != nil {
		return err
	}

	s.auditor.Record(ctx, "employee.delete", "employee", found.ID, found.FullName)

	return nil
}

// List implements EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Position:   emp.Position,
		HourlyRate: emp.HourlyRate,
		HireDate:   emp.HireDate.Format("2006-01-02"),
		Active:     emp.Active,
		CreatedAt:  emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
