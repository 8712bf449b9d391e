package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status,
	a.total_hours, a.regular_hours, a.overtime_hours, a.break_hours,
	a.latitude, a.longitude, a.selfie_url, a.check_out_selfie_url, a.notes,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status,
		&att.TotalHours, &att.RegularHours, &att.OvertimeHours, &att.BreakHours,
		&att.Latitude, &att.Longitude, &att.SelfieURL, &att.CheckOutSelfieURL, &att.Notes,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. The unique constraint on
// (employee_id, date) is the arbiter for concurrent first marks; the losing
// insert surfaces as ErrAlreadyCheckedIn.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in, check_out, status,
			total_hours, regular_hours, overtime_hours, break_hours,
			latitude, longitude, selfie_url, check_out_selfie_url, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.CheckIn, att.CheckOut, att.Status,
		att.TotalHours, att.RegularHours, att.OvertimeHours, att.BreakHours,
		att.Latitude, att.Longitude, att.SelfieURL, att.CheckOutSelfieURL, att.Notes,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status,
		&att.TotalHours, &att.RegularHours, &att.OvertimeHours, &att.BreakHours,
		&att.Latitude, &att.Longitude, &att.SelfieURL, &att.CheckOutSelfieURL, &att.Notes,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in = $2, check_out = $3, status = $4,
		    total_hours = $5, regular_hours = $6, overtime_hours = $7, break_hours = $8,
		    latitude = $9, longitude = $10, selfie_url = $11, check_out_selfie_url = $12,
		    notes = $13, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID, att.CheckIn, att.CheckOut, att.Status,
		att.TotalHours, att.RegularHours, att.OvertimeHours, att.BreakHours,
		att.Latitude, att.Longitude, att.SelfieURL, att.CheckOutSelfieURL, att.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		baseWhere += fmt.Sprintf(" AND e.full_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.EmployeeName+"%")
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	orderByField := "a.date"
	switch filter.SortBy {
	case "employee_name":
		orderByField = "e.full_name"
	case "check_in":
		orderByField = "a.check_in"
	case "check_out":
		orderByField = "a.check_out"
	case "status":
		orderByField = "a.status"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status,
			&att.TotalHours, &att.RegularHours, &att.OvertimeHours, &att.BreakHours,
			&att.Latitude, &att.Longitude, &att.SelfieURL, &att.CheckOutSelfieURL, &att.Notes,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, nil
}

// ListForEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListForEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	full := attendance.AttendanceFilter{
		EmployeeID: &employeeID,
		Date:       filter.Date,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Status:     filter.Status,
		Page:       filter.Page,
		Limit:      filter.Limit,
		SortBy:     filter.SortBy,
		SortOrder:  filter.SortOrder,
	}
	return r.List(ctx, full)
}

// SumHoursForPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepository) SumHoursForPeriod(ctx context.Context, employeeID string, from, to time.Time) (float64, float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(regular_hours), 0), COALESCE(SUM(overtime_hours), 0)
		FROM attendances
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
	`

	var regular, overtime float64
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&regular, &overtime); err != nil {
		return 0, 0, fmt.Errorf("failed to sum hours: %w", err)
	}

	return regular, overtime, nil
}

// ListEmployeeIDsWithRecord implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListEmployeeIDsWithRecord(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT employee_id FROM attendances WHERE date = $1`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
