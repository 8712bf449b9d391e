package insights

import (
	"context"
	"fmt"

	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/domain/shift"
)

type AnomalyReport struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Scanned   int       `json:"scanned"`
	Anomalies []Anomaly `json:"anomalies"`
}

type ScheduleSuggestion struct {
	Assignments map[string]string `json:"assignments"` // employee id -> shift id
}

type ChatReply struct {
	Question string `json:"question"`
	Reply    string `json:"reply"`
}

type InsightsService interface {
	DetectAnomalies(ctx context.Context, startDate, endDate string) (AnomalyReport, error)
	SuggestSchedule(ctx context.Context) (ScheduleSuggestion, error)
	Chat(question string) ChatReply
}

type InsightsServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	shift.ShiftRepository
}

func NewInsightsService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
) InsightsService {
	return &InsightsServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ShiftRepository:      shiftRepo,
	}
}

// DetectAnomalies implements InsightsService.
func (s *InsightsServiceImpl) DetectAnomalies(ctx context.Context, startDate, endDate string) (AnomalyReport, error) {
	filter := attendance.AttendanceFilter{
		StartDate: &startDate,
		EndDate:   &endDate,
		Page:      1,
		Limit:     100,
	}
	if err := filter.Validate(); err != nil {
		return AnomalyReport{}, err
	}

	report := AnomalyReport{From: startDate, To: endDate, Anomalies: []Anomaly{}}

	for {
		records, total, err := s.AttendanceRepository.List(ctx, filter)
		if err != nil {
			return AnomalyReport{}, fmt.Errorf("failed to list attendance: %w", err)
		}

		for _, record := range records {
			report.Scanned++
			report.Anomalies = append(report.Anomalies, ScoreRecord(record)...)
		}

		if int64(filter.Page*filter.Limit) >= total {
			break
		}
		filter.Page++
	}

	return report, nil
}

// SuggestSchedule implements InsightsService.
func (s *InsightsServiceImpl) SuggestSchedule(ctx context.Context) (ScheduleSuggestion, error) {
	employeeIDs, err := s.EmployeeRepository.ListActiveIDs(ctx)
	if err != nil {
		return ScheduleSuggestion{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return ScheduleSuggestion{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	shiftIDs := make([]string, 0, len(shifts))
	for _, sh := range shifts {
		shiftIDs = append(shiftIDs, sh.ID)
	}

	return ScheduleSuggestion{Assignments: SuggestAssignments(employeeIDs, shiftIDs)}, nil
}

// Chat implements InsightsService.
func (s *InsightsServiceImpl) Chat(question string) ChatReply {
	return ChatReply{Question: question, Reply: Answer(question)}
}
