package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position ids whose holders are managers (vedoucí / manažer).
const (
	PositionShiftLead int64 = 2
	PositionManager   int64 = 3
)

// Employee (zaměstnanec) mirrors a row of the employee table.
// Exactly one of SupermarketID / WarehouseID is meaningful by business rule;
// the database enforces it, not this code.
type Employee struct {
	ID            int64
	HireDate      *time.Time
	WorkHours     *int32
	SupermarketID *int64
	WarehouseID   *int64
	ManagerID     *int64
	AddressID     *int64
	FirstName     string
	LastName      string
	Salary        *decimal.Decimal
	PositionID    *int64
}

// IsManagerPosition reports whether the position makes the employee a manager.
func IsManagerPosition(positionID *int64) bool {
	return positionID != nil && (*positionID == PositionShiftLead || *positionID == PositionManager)
}

// ManagerFlag is the numeric flag the procedures expect (1 = manager, 0 = not).
func (e *Employee) ManagerFlag() int {
	if IsManagerPosition(e.PositionID) {
		return 1
	}
	return 0
}

// Normalize folds sentinel values (0, negative ids, blank strings, non-positive salary) into nil.
func (e *Employee) Normalize() {
	e.SupermarketID = PositiveID(e.SupermarketID)
	e.WarehouseID = PositiveID(e.WarehouseID)
	e.ManagerID = PositiveID(e.ManagerID)
	e.AddressID = PositiveID(e.AddressID)
	e.PositionID = PositiveID(e.PositionID)
	e.Salary = PositiveDecimal(e.Salary)
	e.WorkHours = PositiveInt32(e.WorkHours)
}

// EmployeeNode is one row of a subordinate tree; Level 1 is the requested root.
type EmployeeNode struct {
	Employee
	Level int
}

// EmployeeFilter optional criteria for listing employees. Nil means "any".
type EmployeeFilter struct {
	ID            *int64
	FirstName     *string
	LastName      *string
	SupermarketID *int64
	WarehouseID   *int64
	PositionID    *int64
	Limit         *int32
}

// Normalize folds sentinel values into nil.
func (f *EmployeeFilter) Normalize() {
	f.ID = PositiveID(f.ID)
	f.FirstName = NonEmpty(f.FirstName)
	f.LastName = NonEmpty(f.LastName)
	f.SupermarketID = PositiveID(f.SupermarketID)
	f.WarehouseID = PositiveID(f.WarehouseID)
	f.PositionID = PositiveID(f.PositionID)
	f.Limit = PositiveInt32(f.Limit)
}

// ManagerFlag derives the manager flag from the position filter.
func (f *EmployeeFilter) ManagerFlag() int {
	if IsManagerPosition(f.PositionID) {
		return 1
	}
	return 0
}

// EmployeeRegistration input of the atomic "user + employee + link" registration.
// PasswordHash must already be hashed.
type EmployeeRegistration struct {
	FirstName     string
	LastName      string
	Email         string
	PasswordHash  string
	RoleID        int64
	HireDate      *time.Time
	WorkHours     *int32
	SupermarketID *int64
	WarehouseID   *int64
	AddressID     *int64
	Salary        *decimal.Decimal
	PositionID    *int64
}

// EmployeeSalary row of the salary overview view. Salary is nil for
// employees registered without one.
type EmployeeSalary struct {
	EmployeeID   int64
	FirstName    string
	LastName     string
	Salary       *decimal.Decimal
	PositionName string
}
