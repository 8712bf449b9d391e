package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/payroll"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, period_year, period_month,
			regular_hours, overtime_hours, hourly_rate,
			base_amount, overtime_amount, total_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING generated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.PeriodYear, p.PeriodMonth,
		p.RegularHours, p.OvertimeHours, p.HourlyRate,
		p.BaseAmount, p.OvertimeAmount, p.TotalAmount,
	).Scan(&p.GeneratedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.period_year, p.period_month,
		       p.regular_hours, p.overtime_hours, p.hourly_rate,
		       p.base_amount, p.overtime_amount, p.total_amount, p.generated_at,
		       e.full_name AS employee_name
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodYear, &p.PeriodMonth,
		&p.RegularHours, &p.OvertimeHours, &p.HourlyRate,
		&p.BaseAmount, &p.OvertimeAmount, &p.TotalAmount, &p.GeneratedAt,
		&p.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Year != nil {
		baseWhere += fmt.Sprintf(" AND p.period_year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Month != nil {
		baseWhere += fmt.Sprintf(" AND p.period_month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM payrolls p WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.period_year, p.period_month,
		       p.regular_hours, p.overtime_hours, p.hourly_rate,
		       p.base_amount, p.overtime_amount, p.total_amount, p.generated_at,
		       e.full_name AS employee_name
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.period_year DESC, p.period_month DESC, e.full_name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PeriodYear, &p.PeriodMonth,
			&p.RegularHours, &p.OvertimeHours, &p.HourlyRate,
			&p.BaseAmount, &p.OvertimeAmount, &p.TotalAmount, &p.GeneratedAt,
			&p.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, total, nil
}

// ExistsForPeriod implements payroll.PayrollRepository.
func (r *payrollRepository) ExistsForPeriod(ctx context.Context, employeeID string, year, month int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payrolls
			WHERE employee_id = $1 AND period_year = $2 AND period_month = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, year, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}

	return exists, nil
}
