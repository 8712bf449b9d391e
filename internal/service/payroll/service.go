package payroll

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
	auditService "github.com/workpulse/workpulse-backend-go/internal/service/audit"
)

type PayrollService interface {
	// Generate creates one payroll line per active employee for the period,
	// pricing the hours accumulated in attendance. Employees already paid for
	// the period are skipped, not overwritten.
	Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error)
	Get(ctx context.Context, id string) (payroll.PayrollResponse, error)
	List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error)
}

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	auditor auditService.Recorder
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	auditor auditService.Recorder,
) PayrollService {
	return &PayrollServiceImpl{
		db:                   db,
		PayrollRepository:    payrollRepo,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		auditor:              auditor,
	}
}

// Generate implements PayrollService.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	employeeIDs, err := s.EmployeeRepository.ListActiveIDs(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	var result payroll.GeneratePayrollResponse

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, employeeID := range employeeIDs {
			exists, err := s.PayrollRepository.ExistsForPeriod(txCtx, employeeID, req.Year, req.Month)
			if err != nil {
				return err
			}
			if exists {
				result.Skipped++
				continue
			}

			regular, overtime, err := s.AttendanceRepository.SumHoursForPeriod(txCtx, employeeID, from, to)
			if err != nil {
				return err
			}

			emp, err := s.EmployeeRepository.GetByID(txCtx, employeeID)
			if err != nil {
				return err
			}

			amounts := CalculateAmounts(regular, overtime, emp.HourlyRate)

			created, err := s.PayrollRepository.Create(txCtx, payroll.Payroll{
				ID:             uuid.NewString(),
				EmployeeID:     employeeID,
				PeriodYear:     req.Year,
				PeriodMonth:    req.Month,
				RegularHours:   regular,
				OvertimeHours:  overtime,
				HourlyRate:     emp.HourlyRate,
				BaseAmount:     amounts.Base,
				OvertimeAmount: amounts.Overtime,
				TotalAmount:    amounts.Total,
			})
			if err != nil {
				return err
			}

			created.EmployeeName = &emp.FullName
			result.Payrolls = append(result.Payrolls, mapPayrollToResponse(created))
			result.Generated++
		}
		return nil
	})
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	s.auditor.Record(ctx, "payroll.generate", "payroll",
		fmt.Sprintf("%04d-%02d", req.Year, req.Month),
		fmt.Sprintf("generated %d, skipped %d", result.Generated, result.Skipped))

	return result, nil
}

// Get implements PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	found, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return mapPayrollToResponse(found), nil
}

// List implements PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	payrolls, total, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payrolls: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, mapPayrollToResponse(p))
	}

	return payroll.ListPayrollResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Payrolls:   responses,
	}, nil
}

func mapPayrollToResponse(p payroll.Payroll) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		EmployeeName:   p.EmployeeName,
		PeriodYear:     p.PeriodYear,
		PeriodMonth:    p.PeriodMonth,
		RegularHours:   p.RegularHours,
		OvertimeHours:  p.OvertimeHours,
		HourlyRate:     p.HourlyRate,
		BaseAmount:     p.BaseAmount,
		OvertimeAmount: p.OvertimeAmount,
		TotalAmount:    p.TotalAmount,
		GeneratedAt:    p.GeneratedAt.Format("2006-01-02 15:04:05"),
	}
}
