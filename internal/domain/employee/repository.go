package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	// ListActiveIDs returns ids of all active employees; used by payroll
	// generation and the auto-absence job.
	ListActiveIDs(ctx context.Context) ([]string, error)
}
