package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Type, req.StartDate, req.EndDate, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason, l.status,
		       l.reviewed_by, l.reviewed_at, l.review_note, l.created_at, l.updated_at,
		       e.full_name AS employee_name
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.ReviewNote, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepository) Update(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, review_note = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Status, req.ReviewedBy, req.ReviewedAt, req.ReviewNote)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	return r.list(ctx, filter, nil)
}

// ListForEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListForEmployee(ctx context.Context, employeeID string, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	return r.list(ctx, filter, &employeeID)
}

func (r *leaveRepository) list(ctx context.Context, filter leave.LeaveFilter, employeeID *string) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if employeeID == nil {
		employeeID = filter.EmployeeID
	}
	if employeeID != nil && *employeeID != "" {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *employeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND l.end_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND l.start_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests l WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason, l.status,
		       l.reviewed_by, l.reviewed_at, l.review_note, l.created_at, l.updated_at,
		       e.full_name AS employee_name
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason, &req.Status,
			&req.ReviewedBy, &req.ReviewedAt, &req.ReviewNote, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, total, nil
}

// HasOverlap implements leave.LeaveRepository.
func (r *leaveRepository) HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status <> 'REJECTED'
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var overlap bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&overlap); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}

	return overlap, nil
}
