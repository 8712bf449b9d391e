package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/employee"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, full_name, email, position, hourly_rate, hire_date, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.FullName, emp.Email, emp.Position, emp.HourlyRate, emp.HireDate, emp.Active,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *employeeRepository) getBy(ctx context.Context, where string, arg any) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, position, hourly_rate, hire_date, active, created_at, updated_at
		FROM employees
		WHERE ` + where

	var emp employee.Employee
	err := q.QueryRow(ctx, query, arg).Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.Position, &emp.HourlyRate,
		&emp.HireDate, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2, email = $3, position = $4, hourly_rate = $5,
		    hire_date = $6, active = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FullName, emp.Email, emp.Position, emp.HourlyRate, emp.HireDate, emp.Active,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (full_name ILIKE $%d OR position ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	if filter.Active != nil {
		baseWhere += fmt.Sprintf(" AND active = $%d", argIdx)
		args = append(args, *filter.Active)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM employees WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	orderByField := "full_name"
	switch filter.SortBy {
	case "hire_date":
		orderByField = "hire_date"
	case "position":
		orderByField = "position"
	}
	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, full_name, email, position, hourly_rate, hire_date, active, created_at, updated_at
		FROM employees
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Email, &emp.Position, &emp.HourlyRate,
			&emp.HireDate, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, total, nil
}

// ListActiveIDs implements employee.EmployeeRepository.
func (r *employeeRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE active ORDER BY full_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active employees: %w", err)
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
