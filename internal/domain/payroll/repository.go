package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, int64, error)
	// ExistsForPeriod guards against double generation.
	ExistsForPeriod(ctx context.Context, employeeID string, year, month int) (bool, error)
}
