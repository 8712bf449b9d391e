package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, name, start_time, end_time, grace_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.StartTime, s.EndTime, s.GraceMinutes,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, grace_minutes, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.GraceMinutes, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $2, start_time = $3, end_time = $4, grace_minutes = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.Name, s.StartTime, s.EndTime, s.GraceMinutes)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return shift.ErrShiftNameExists
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, start_time, end_time, grace_minutes, created_at, updated_at
		FROM shifts
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.GraceMinutes, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, nil
}

// Assign implements shift.ShiftRepository.
func (r *shiftRepository) Assign(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, employee_id, shift_id, effective_from)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.EmployeeID, a.ShiftID, a.EffectiveFrom,
	).Scan(&a.CreatedAt)

	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return a, nil
}

// ListAssignments implements shift.ShiftRepository.
func (r *shiftRepository) ListAssignments(ctx context.Context, employeeID *string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.shift_id, sa.effective_from, sa.created_at,
		       s.name AS shift_name,
		       e.full_name AS employee_name
		FROM shift_assignments sa
		LEFT JOIN shifts s ON s.id = sa.shift_id
		LEFT JOIN employees e ON e.id = sa.employee_id
	`
	args := []interface{}{}
	if employeeID != nil && *employeeID != "" {
		query += ` WHERE sa.employee_id = $1`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY sa.effective_from DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		var a shift.Assignment
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.ShiftID, &a.EffectiveFrom, &a.CreatedAt,
			&a.ShiftName, &a.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// GetActiveForEmployee implements shift.ShiftRepository.
func (r *shiftRepository) GetActiveForEmployee(ctx context.Context, employeeID string, on time.Time) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name, s.start_time, s.end_time, s.grace_minutes, s.created_at, s.updated_at
		FROM shift_assignments sa
		JOIN shifts s ON s.id = sa.shift_id
		WHERE sa.employee_id = $1
		  AND sa.effective_from <= $2
		ORDER BY sa.effective_from DESC
		LIMIT 1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, employeeID, on).Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.GraceMinutes, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}

	return &s, nil
}
