package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Departments(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	// ExistingIDs returns the subset of ids that belong to an employee.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
