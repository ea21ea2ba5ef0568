package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

// EmployeeRepository persistence port for employees (zaměstnanci).
type EmployeeRepository interface {
	List(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	// Hierarchy returns the subordinate tree rooted at id, root first with Level 1.
	Hierarchy(ctx context.Context, id int64) ([]*entity.EmployeeNode, error)
	Create(ctx context.Context, e *entity.Employee) error
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id int64) error
	LinkUser(ctx context.Context, employeeID, userID int64) error
	// Register creates the user, the employee and the link between them in one call.
	Register(ctx context.Context, reg *entity.EmployeeRegistration) (userID, employeeID int64, err error)
	// AverageSubordinateSalary returns nil when the employee has no subordinates.
	AverageSubordinateSalary(ctx context.Context, id int64) (*decimal.Decimal, error)
	ApplySalaryIndexation(ctx context.Context, minPercentage, maxPercentage decimal.Decimal) (string, error)
	SalaryOverview(ctx context.Context) ([]*entity.EmployeeSalary, error)
}
