// Package testutil holds in-memory implementations of the repository ports
// used by use case and handler tests.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bdas-dva/retail-api/internal/domain"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

var (
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
	_ repository.PositionRepository = (*PositionRepo)(nil)
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.StoreRepository    = (*StoreRepo)(nil)
)

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// EmployeeRepo keeps employees in a map. Users created by Register land in Users.
type EmployeeRepo struct {
	mu     sync.Mutex
	rows   map[int64]*entity.Employee
	links  map[int64]int64
	nextID int64

	Users *UserRepo
	// Err, when set, is returned by every call.
	Err error
	// FailRegister makes Register fail after validating its input.
	FailRegister bool
	// IndexationResult is returned by ApplySalaryIndexation.
	IndexationResult string
}

func NewEmployeeRepo(users *UserRepo) *EmployeeRepo {
	return &EmployeeRepo{rows: map[int64]*entity.Employee{}, links: map[int64]int64{}, Users: users}
}

// Seed stores employees as given (ids included) and returns the repo.
func (r *EmployeeRepo) Seed(list ...*entity.Employee) *EmployeeRepo {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range list {
		r.rows[e.ID] = clone(e)
		if e.ID > r.nextID {
			r.nextID = e.ID
		}
	}
	return r
}

// LinkedUser returns the user id linked to the employee, 0 if none.
func (r *EmployeeRepo) LinkedUser(employeeID int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.links[employeeID]
}

// Count returns the number of stored employees.
func (r *EmployeeRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *EmployeeRepo) List(_ context.Context, f entity.EmployeeFilter) ([]*entity.Employee, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	f.Normalize()
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Employee
	for _, id := range sortedKeys(r.rows) {
		e := r.rows[id]
		if !matchesEmployee(e, f) {
			continue
		}
		out = append(out, clone(e))
		if f.Limit != nil && len(out) >= int(*f.Limit) {
			break
		}
	}
	return out, nil
}

func matchesEmployee(e *entity.Employee, f entity.EmployeeFilter) bool {
	eq := func(want, got *int64) bool { return want == nil || (got != nil && *got == *want) }
	switch {
	case f.ID != nil && e.ID != *f.ID:
		return false
	case f.FirstName != nil && !strings.EqualFold(e.FirstName, *f.FirstName):
		return false
	case f.LastName != nil && !strings.EqualFold(e.LastName, *f.LastName):
		return false
	case !eq(f.SupermarketID, e.SupermarketID), !eq(f.WarehouseID, e.WarehouseID), !eq(f.PositionID, e.PositionID):
		return false
	}
	return true
}

func (r *EmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.rows[id]), nil
}

func (r *EmployeeRepo) Hierarchy(_ context.Context, id int64) ([]*entity.EmployeeNode, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	root, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	out := []*entity.EmployeeNode{{Employee: *clone(root), Level: 1}}
	for i := 0; i < len(out); i++ {
		parent := out[i]
		for _, cid := range sortedKeys(r.rows) {
			c := r.rows[cid]
			if c.ManagerID != nil && *c.ManagerID == parent.ID {
				out = append(out, &entity.EmployeeNode{Employee: *clone(c), Level: parent.Level + 1})
			}
		}
	}
	return out, nil
}

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := clone(e)
	stored.ID = r.nextID
	stored.Normalize()
	r.rows[stored.ID] = stored
	e.ID = stored.ID
	return nil
}

func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[e.ID]; !ok {
		return domain.NewNotFound("zaměstnanec", "id", e.ID)
	}
	stored := clone(e)
	stored.Normalize()
	r.rows[e.ID] = stored
	return nil
}

func (r *EmployeeRepo) Delete(_ context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	delete(r.links, id)
	return nil
}

func (r *EmployeeRepo) LinkUser(_ context.Context, employeeID, userID int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[employeeID]; !ok {
		return fmt.Errorf("link: %w", domain.ErrConflict)
	}
	r.links[employeeID] = userID
	return nil
}

func (r *EmployeeRepo) Register(ctx context.Context, reg *entity.EmployeeRegistration) (int64, int64, error) {
	if r.Err != nil {
		return 0, 0, r.Err
	}
	if r.FailRegister {
		return 0, 0, domain.NewDatabaseError("proc_zamestnanec_register", fmt.Errorf("simulated failure"))
	}
	user := &entity.User{
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		PasswordHash: reg.PasswordHash,
		RoleID:       reg.RoleID,
	}
	if r.Users != nil {
		if err := r.Users.Create(ctx, user); err != nil {
			return 0, 0, err
		}
	}
	e := &entity.Employee{
		HireDate:      reg.HireDate,
		WorkHours:     reg.WorkHours,
		SupermarketID: reg.SupermarketID,
		WarehouseID:   reg.WarehouseID,
		AddressID:     reg.AddressID,
		FirstName:     reg.FirstName,
		LastName:      reg.LastName,
		Salary:        reg.Salary,
		PositionID:    reg.PositionID,
	}
	if err := r.Create(ctx, e); err != nil {
		return 0, 0, err
	}
	r.mu.Lock()
	r.links[e.ID] = user.ID
	r.mu.Unlock()
	return user.ID, e.ID, nil
}

func (r *EmployeeRepo) AverageSubordinateSalary(ctx context.Context, id int64) (*decimal.Decimal, error) {
	nodes, err := r.Hierarchy(ctx, id)
	if err != nil {
		return nil, err
	}
	sum, n := decimal.Zero, 0
	for _, node := range nodes {
		if node.Level > 1 && node.Salary != nil {
			sum = sum.Add(*node.Salary)
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := sum.Div(decimal.NewFromInt(int64(n)))
	return &avg, nil
}

// ApplySalaryIndexation raises every salary by the middle of the band.
func (r *EmployeeRepo) ApplySalaryIndexation(_ context.Context, minPct, maxPct decimal.Decimal) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	factor := decimal.NewFromInt(1).Add(minPct.Add(maxPct).Div(decimal.NewFromInt(200)))
	updated := 0
	for _, e := range r.rows {
		if e.Salary == nil {
			continue
		}
		raised := e.Salary.Mul(factor).Round(2)
		e.Salary = &raised
		updated++
	}
	if r.IndexationResult != "" {
		return r.IndexationResult, nil
	}
	return fmt.Sprintf("Indexace provedena pro %d zaměstnanců.", updated), nil
}

func (r *EmployeeRepo) SalaryOverview(_ context.Context) ([]*entity.EmployeeSalary, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.EmployeeSalary
	for _, id := range sortedKeys(r.rows) {
		e := r.rows[id]
		row := &entity.EmployeeSalary{EmployeeID: e.ID, FirstName: e.FirstName, LastName: e.LastName, Salary: e.Salary}
		if e.PositionID != nil {
			row.PositionName = fmt.Sprintf("pozice %d", *e.PositionID)
		}
		out = append(out, row)
	}
	return out, nil
}

// PositionRepo in-memory positions.
type PositionRepo struct {
	mu     sync.Mutex
	rows   map[int64]*entity.Position
	nextID int64
	Err    error
}

func NewPositionRepo() *PositionRepo {
	return &PositionRepo{rows: map[int64]*entity.Position{}}
}

func (r *PositionRepo) List(_ context.Context) ([]*entity.Position, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Position, 0, len(r.rows))
	for _, id := range sortedKeys(r.rows) {
		out = append(out, clone(r.rows[id]))
	}
	return out, nil
}

func (r *PositionRepo) Create(_ context.Context, p *entity.Position) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.rows[p.ID] = clone(p)
	return nil
}

func (r *PositionRepo) Update(_ context.Context, p *entity.Position) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[p.ID]; !ok {
		return domain.NewNotFound("pozice", "id", p.ID)
	}
	r.rows[p.ID] = clone(p)
	return nil
}

func (r *PositionRepo) Delete(_ context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

// CustomerRepo in-memory customers.
type CustomerRepo struct {
	mu        sync.Mutex
	rows      map[int64]*entity.Customer
	nextID    int64
	Err       error
	CreateErr error
}

func NewCustomerRepo() *CustomerRepo {
	return &CustomerRepo{rows: map[int64]*entity.Customer{}}
}

// Count returns the number of stored customers.
func (r *CustomerRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *CustomerRepo) Create(_ context.Context, c *entity.Customer) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	if r.CreateErr != nil {
		return 0, r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := clone(c)
	stored.ID = r.nextID
	stored.AddressID = entity.PositiveID(stored.AddressID)
	r.rows[stored.ID] = stored
	c.ID = stored.ID
	return stored.ID, nil
}

func (r *CustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[c.ID]; !ok {
		return domain.NewNotFound("zákazník", "id", c.ID)
	}
	stored := clone(c)
	stored.AddressID = entity.PositiveID(stored.AddressID)
	r.rows[c.ID] = stored
	return nil
}

func (r *CustomerRepo) Delete(_ context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *CustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.rows[id]), nil
}

func (r *CustomerRepo) GetByPhone(_ context.Context, phone int64) (*entity.Customer, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range sortedKeys(r.rows) {
		if r.rows[id].Phone == phone {
			return clone(r.rows[id]), nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) List(_ context.Context, limit *int32) ([]*entity.Customer, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Customer
	for _, id := range sortedKeys(r.rows) {
		if limit != nil && len(out) >= int(*limit) {
			break
		}
		out = append(out, clone(r.rows[id]))
	}
	return out, nil
}

func (r *CustomerRepo) AddressID(_ context.Context, customerID int64) (*int64, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[customerID]
	if !ok {
		return nil, fmt.Errorf("proc_get_adresa_id_by_zakaznik_id: %w", domain.ErrNotFound)
	}
	return clone(c.AddressID), nil
}

func (r *CustomerRepo) snapshot() *CustomerRepo {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := &CustomerRepo{rows: map[int64]*entity.Customer{}, nextID: r.nextID, Err: r.Err, CreateErr: r.CreateErr}
	for id, row := range r.rows {
		c.rows[id] = clone(row)
	}
	return c
}

func (r *CustomerRepo) restore(from *CustomerRepo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows, r.nextID = from.rows, from.nextID
}

// UserRepo in-memory users; email is unique case-insensitively.
type UserRepo struct {
	mu        sync.Mutex
	rows      map[int64]*entity.User
	roleNames map[int64]string
	nextID    int64
	Err       error
	CreateErr error
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		rows: map[int64]*entity.User{},
		roleNames: map[int64]string{
			entity.RoleIDUser:     "ROLE_USER",
			entity.RoleIDEmployee: "ROLE_EMPLOYEE",
			3:                     "ROLE_ADMIN",
		},
	}
}

// Count returns the number of stored users.
func (r *UserRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *UserRepo) emailTaken(email string, exceptID int64) bool {
	for id, u := range r.rows {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	if r.Err != nil {
		return r.Err
	}
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(u.Email, 0) {
		return domain.ErrEmailAlreadyExists
	}
	r.nextID++
	stored := clone(u)
	stored.ID = r.nextID
	r.rows[stored.ID] = stored
	u.ID = stored.ID
	return nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.rows[u.ID]
	if !ok {
		return domain.NewNotFound("uživatel", "id", u.ID)
	}
	if r.emailTaken(u.Email, u.ID) {
		return domain.ErrEmailAlreadyExists
	}
	stored := clone(u)
	if stored.PasswordHash == "" {
		stored.PasswordHash = old.PasswordHash
	}
	if stored.RoleID <= 0 {
		stored.RoleID = old.RoleID
	}
	r.rows[u.ID] = stored
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.rows[id]), nil
}

func (r *UserRepo) List(_ context.Context, startingID *int64, limit *int32) ([]*entity.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, id := range sortedKeys(r.rows) {
		if startingID != nil && id < *startingID {
			continue
		}
		if limit != nil && len(out) >= int(*limit) {
			break
		}
		out = append(out, clone(r.rows[id]))
	}
	return out, nil
}

func (r *UserRepo) Search(_ context.Context, f entity.UserFilter) ([]*entity.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, id := range sortedKeys(r.rows) {
		u := r.rows[id]
		if f.ID != nil && u.ID != *f.ID {
			continue
		}
		if f.Email != nil && !strings.EqualFold(u.Email, *f.Email) {
			continue
		}
		if f.RoleID != nil && u.RoleID != *f.RoleID {
			continue
		}
		if f.Limit != nil && len(out) >= int(*f.Limit) {
			break
		}
		out = append(out, clone(u))
	}
	return out, nil
}

func (r *UserRepo) GetWithRoleByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range sortedKeys(r.rows) {
		u := r.rows[id]
		if strings.EqualFold(u.Email, email) {
			c := clone(u)
			c.RoleName = entity.NormalizeRole(r.roleNames[u.RoleID])
			return c, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Overview(_ context.Context) ([]map[string]any, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]map[string]any, 0, len(r.rows))
	for _, id := range sortedKeys(r.rows) {
		u := r.rows[id]
		out = append(out, map[string]any{
			"id_user":  u.ID,
			"email":    u.Email,
			"rolename": r.roleNames[u.RoleID],
		})
	}
	return out, nil
}

func (r *UserRepo) snapshot() *UserRepo {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := &UserRepo{rows: map[int64]*entity.User{}, roleNames: r.roleNames, nextID: r.nextID, Err: r.Err, CreateErr: r.CreateErr}
	for id, row := range r.rows {
		c.rows[id] = clone(row)
	}
	return c
}

func (r *UserRepo) restore(from *UserRepo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows, r.nextID = from.rows, from.nextID
}

// StoreRepo fixed supermarkets and warehouses.
type StoreRepo struct {
	Supermarkets []*entity.Supermarket
	Warehouses   []*entity.Warehouse
	Err          error
}

func (r *StoreRepo) ListSupermarkets(_ context.Context) ([]*entity.Supermarket, error) {
	return r.Supermarkets, r.Err
}

func (r *StoreRepo) ListWarehouses(_ context.Context) ([]*entity.Warehouse, error) {
	return r.Warehouses, r.Err
}

// TxRunner applies the callback to copies of the repos and keeps the changes
// only when the callback succeeds.
type TxRunner struct {
	Customers *CustomerRepo
	Users     *UserRepo
}

func (t *TxRunner) RunRegistration(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) error) error {
	customers := t.Customers.snapshot()
	users := t.Users.snapshot()
	if err := fn(customers, users); err != nil {
		return err
	}
	t.Customers.restore(customers)
	t.Users.restore(users)
	return nil
}
