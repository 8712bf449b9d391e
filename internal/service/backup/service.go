package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/storage"
	auditService "github.com/workpulse/workpulse-backend-go/internal/service/audit"
)

type BackupResult struct {
	Path        string `json:"path"`
	Employees   int    `json:"employees"`
	Attendances int    `json:"attendances"`
	Leaves      int    `json:"leaves"`
	Payrolls    int    `json:"payrolls"`
}

// BackupService dumps the core tables as one JSON document into file storage.
// It runs on demand via the API and on the scheduler interval.
type BackupService interface {
	Run(ctx context.Context) (BackupResult, error)
	List(ctx context.Context) ([]string, error)
}

type BackupServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	leave.LeaveRepository
	payroll.PayrollRepository
	fileStorage storage.FileStorage
	auditor     auditService.Recorder
}

func NewBackupService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	payrollRepo payroll.PayrollRepository,
	fileStorage storage.FileStorage,
	auditor auditService.Recorder,
) BackupService {
	return &BackupServiceImpl{
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		LeaveRepository:      leaveRepo,
		PayrollRepository:    payrollRepo,
		fileStorage:          fileStorage,
		auditor:              auditor,
	}
}

const dumpBatchSize = 100

// Run implements BackupService.
func (s *BackupServiceImpl) Run(ctx context.Context) (BackupResult, error) {
	employees, err := s.dumpEmployees(ctx)
	if err != nil {
		return BackupResult{}, err
	}

	attendances, err := s.dumpAttendances(ctx)
	if err != nil {
		return BackupResult{}, err
	}

	leaves, err := s.dumpLeaves(ctx)
	if err != nil {
		return BackupResult{}, err
	}

	payrolls, err := s.dumpPayrolls(ctx)
	if err != nil {
		return BackupResult{}, err
	}

	dump := map[string]interface{}{
		"taken_at":    time.Now().UTC().Format(time.RFC3339),
		"employees":   employees,
		"attendances": attendances,
		"leaves":      leaves,
		"payrolls":    payrolls,
	}

	payload, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return BackupResult{}, fmt.Errorf("failed to marshal backup: %w", err)
	}

	path := fmt.Sprintf("backups/backup-%s.json", time.Now().UTC().Format("20060102-150405"))
	if _, err := s.fileStorage.Upload(ctx, bytes.NewReader(payload), path, "application/json"); err != nil {
		return BackupResult{}, fmt.Errorf("failed to store backup: %w", err)
	}

	s.auditor.Record(ctx, "backup.run", "backup", path,
		fmt.Sprintf("%d employees, %d attendances, %d leaves, %d payrolls",
			len(employees), len(attendances), len(leaves), len(payrolls)))

	return BackupResult{
		Path:        path,
		Employees:   len(employees),
		Attendances: len(attendances),
		Leaves:      len(leaves),
		Payrolls:    len(payrolls),
	}, nil
}

// List implements BackupService.
func (s *BackupServiceImpl) List(ctx context.Context) ([]string, error) {
	paths, err := s.fileStorage.List(ctx, "backups/")
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	return paths, nil
}

func (s *BackupServiceImpl) dumpEmployees(ctx context.Context) ([]employee.Employee, error) {
	var all []employee.Employee
	filter := employee.EmployeeFilter{Page: 1, Limit: dumpBatchSize, SortBy: "full_name", SortOrder: "asc"}
	for {
		batch, total, err := s.EmployeeRepository.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to dump employees: %w", err)
		}
		all = append(all, batch...)
		if int64(filter.Page*filter.Limit) >= total {
			return all, nil
		}
		filter.Page++
	}
}

func (s *BackupServiceImpl) dumpAttendances(ctx context.Context) ([]attendance.Attendance, error) {
	var all []attendance.Attendance
	filter := attendance.AttendanceFilter{Page: 1, Limit: dumpBatchSize, SortBy: "date", SortOrder: "desc"}
	for {
		batch, total, err := s.AttendanceRepository.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to dump attendances: %w", err)
		}
		all = append(all, batch...)
		if int64(filter.Page*filter.Limit) >= total {
			return all, nil
		}
		filter.Page++
	}
}

func (s *BackupServiceImpl) dumpLeaves(ctx context.Context) ([]leave.LeaveRequest, error) {
	var all []leave.LeaveRequest
	filter := leave.LeaveFilter{Page: 1, Limit: dumpBatchSize}
	for {
		batch, total, err := s.LeaveRepository.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to dump leave requests: %w", err)
		}
		all = append(all, batch...)
		if int64(filter.Page*filter.Limit) >= total {
			return all, nil
		}
		filter.Page++
	}
}

func (s *BackupServiceImpl) dumpPayrolls(ctx context.Context) ([]payroll.Payroll, error) {
	var all []payroll.Payroll
	filter := payroll.PayrollFilter{Page: 1, Limit: dumpBatchSize}
	for {
		batch, total, err := s.PayrollRepository.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to dump payrolls: %w", err)
		}
		all = append(all, batch...)
		if int64(filter.Page*filter.Limit) >= total {
			return all, nil
		}
		filter.Page++
	}
}
