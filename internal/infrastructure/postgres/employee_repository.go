package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implements EmployeeRepository on top of the employee procedures.
type EmployeeRepo struct {
	proc *ProcRunner
}

// NewEmployeeRepository builds the employee persistence adapter.
func NewEmployeeRepository(proc *ProcRunner) *EmployeeRepo {
	return &EmployeeRepo{proc: proc}
}

// List reads employees through proc_zamnestnanec_r; nil filter fields mean "any".
func (r *EmployeeRepo) List(ctx context.Context, filter entity.EmployeeFilter) ([]*entity.Employee, error) {
	filter.Normalize()
	rows, err := fetchCursor[employeeRow](ctx, r.proc, Call("proc_zamnestnanec_r",
		In("p_id_zamnestnance", filter.ID),
		In("p_jmeno", filter.FirstName),
		In("p_prijmeni", filter.LastName),
		In("p_supermarket_id_supermarketu", filter.SupermarketID),
		In("p_sklad_id_skladu", filter.WarehouseID),
		In("p_pozice_id_pozice", filter.PositionID),
		In("p_manager_flag", filter.ManagerFlag()),
		In("p_limit", filter.Limit),
		Out("p_cursor"),
	))
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*employeeRow).toEntity), nil
}

// GetByID returns nil, nil when the employee does not exist.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	list, err := r.List(ctx, entity.EmployeeFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// Hierarchy reads the subordinate tree of id.
func (r *EmployeeRepo) Hierarchy(ctx context.Context, id int64) ([]*entity.EmployeeNode, error) {
	rows, err := fetchCursor[employeeRow](ctx, r.proc, Call("proc_zamestnanec_hierarchy",
		In("p_id_zamestnance", id),
		Out("p_cursor"),
	))
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*employeeRow).toNode), nil
}

// Create inserts a new employee.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	return r.proc.Exec(ctx, employeeCUD(ActionInsert, nil, e))
}

// Update overwrites the employee identified by e.ID.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	return r.proc.Exec(ctx, employeeCUD(ActionUpdate, &e.ID, e))
}

// Delete removes the employee.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	return r.proc.Exec(ctx, employeeCUD(ActionDelete, &id, &entity.Employee{}))
}

func employeeCUD(action string, id *int64, e *entity.Employee) Procedure {
	e.Normalize()
	return Call("proc_zamnestnanec_cud",
		In("p_action", action),
		In("p_id_zamnestnance", id),
		In("p_datumzamestnani", e.HireDate),
		In("p_pracovnidoba", e.WorkHours),
		In("p_supermarket_id_supermarketu", e.SupermarketID),
		In("p_sklad_id_skladu", e.WarehouseID),
		In("p_zamnestnanec_id_zamnestnance", e.ManagerID),
		In("p_adresa_id_adresy", e.AddressID),
		In("p_jmeno", entity.StringOrNil(e.FirstName)),
		In("p_prijmeni", entity.StringOrNil(e.LastName)),
		In("p_mzda", e.Salary),
		In("p_manager_flag", e.ManagerFlag()),
	)
}

// LinkUser attaches an existing user account to the employee.
func (r *EmployeeRepo) LinkUser(ctx context.Context, employeeID, userID int64) error {
	return r.proc.Exec(ctx, Call("proc_zamestnanec_user_link",
		In("p_id_zamestnance", employeeID),
		In("p_id_user", userID),
	))
}

// Register creates user, employee and their link in one procedure call.
func (r *EmployeeRepo) Register(ctx context.Context, reg *entity.EmployeeRegistration) (int64, int64, error) {
	var userID, employeeID *int64
	err := r.proc.Call(ctx, Call("proc_zamestnanec_register",
		In("p_jmeno", reg.FirstName),
		In("p_prijmeni", reg.LastName),
		In("p_email", reg.Email),
		In("p_password", reg.PasswordHash),
		In("p_role_id", reg.RoleID),
		In("p_datumzamestnani", reg.HireDate),
		In("p_pracovnidoba", entity.PositiveInt32(reg.WorkHours)),
		In("p_supermarket_id_supermarketu", entity.PositiveID(reg.SupermarketID)),
		In("p_sklad_id_skladu", entity.PositiveID(reg.WarehouseID)),
		In("p_adresa_id_adresy", entity.PositiveID(reg.AddressID)),
		In("p_mzda", entity.PositiveDecimal(reg.Salary)),
		In("p_pozice_id_pozice", entity.PositiveID(reg.PositionID)),
		Out("p_id_user"),
		Out("p_id_zamestnance"),
	), &userID, &employeeID)
	if err != nil {
		return 0, 0, err
	}
	if userID == nil || employeeID == nil {
		return 0, 0, fmt.Errorf("proc_zamestnanec_register: procedure returned no ids")
	}
	return *userID, *employeeID, nil
}

// AverageSubordinateSalary asks the database for the average; nil when there are no subordinates.
func (r *EmployeeRepo) AverageSubordinateSalary(ctx context.Context, id int64) (*decimal.Decimal, error) {
	var avg *decimal.Decimal
	err := r.proc.Call(ctx, Call("proc_avg_subordinate_salary",
		In("p_id_zamestnance", id),
		Out("p_avg"),
	), &avg)
	if err != nil {
		return nil, err
	}
	return avg, nil
}

// ApplySalaryIndexation runs the bulk raise and returns the procedure's summary message.
func (r *EmployeeRepo) ApplySalaryIndexation(ctx context.Context, minPercentage, maxPercentage decimal.Decimal) (string, error) {
	var result *string
	err := r.proc.Call(ctx, Call("proc_apply_salary_indexation",
		In("p_min_percentage", minPercentage),
		In("p_max_percentage", maxPercentage),
		Out("p_result"),
	), &result)
	if err != nil {
		return "", err
	}
	return deref(result), nil
}

// SalaryOverview reads zamestnanci_mzdy_view.
func (r *EmployeeRepo) SalaryOverview(ctx context.Context) ([]*entity.EmployeeSalary, error) {
	q := psql.Select("id_zamestnance", "jmeno", "prijmeni", "mzda", "nazev_pozice").
		From("zamestnanci_mzdy_view").
		OrderBy("prijmeni", "jmeno")
	var rows []*employeeSalaryRow
	if err := r.proc.Select(ctx, &rows, q); err != nil {
		return nil, err
	}
	return mapRows(rows, (*employeeSalaryRow).toEntity), nil
}
