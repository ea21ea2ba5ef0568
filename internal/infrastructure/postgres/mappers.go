package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

// Row structs carry the cursor column names. Everything nullable is a pointer.

type employeeRow struct {
	ID            int64            `db:"id_zamnestnance"`
	HireDate      *time.Time       `db:"datumzamestnani"`
	WorkHours     *int32           `db:"pracovnidoba"`
	SupermarketID *int64           `db:"supermarket_id_supermarketu"`
	WarehouseID   *int64           `db:"sklad_id_skladu"`
	ManagerID     *int64           `db:"zamnestnanec_id_zamnestnance"`
	AddressID     *int64           `db:"adresa_id_adresy"`
	FirstName     *string          `db:"jmeno"`
	LastName      *string          `db:"prijmeni"`
	Salary        *decimal.Decimal `db:"mzda"`
	PositionID    *int64           `db:"pozice_id_pozice"`
	// Level is only present in hierarchy cursors.
	Level *int `db:"level"`
}

func (r *employeeRow) toEntity() *entity.Employee {
	e := &entity.Employee{
		ID:            r.ID,
		HireDate:      r.HireDate,
		WorkHours:     r.WorkHours,
		SupermarketID: r.SupermarketID,
		WarehouseID:   r.WarehouseID,
		ManagerID:     r.ManagerID,
		AddressID:     r.AddressID,
		FirstName:     deref(r.FirstName),
		LastName:      deref(r.LastName),
		Salary:        r.Salary,
		PositionID:    r.PositionID,
	}
	e.Normalize()
	return e
}

func (r *employeeRow) toNode() *entity.EmployeeNode {
	return &entity.EmployeeNode{Employee: *r.toEntity(), Level: deref(r.Level)}
}

type employeeSalaryRow struct {
	EmployeeID   int64            `db:"id_zamestnance"`
	FirstName    *string          `db:"jmeno"`
	LastName     *string          `db:"prijmeni"`
	Salary       *decimal.Decimal `db:"mzda"`
	PositionName *string          `db:"nazev_pozice"`
}

func (r *employeeSalaryRow) toEntity() *entity.EmployeeSalary {
	return &entity.EmployeeSalary{
		EmployeeID:   r.EmployeeID,
		FirstName:    deref(r.FirstName),
		LastName:     deref(r.LastName),
		Salary:       r.Salary,
		PositionName: deref(r.PositionName),
	}
}

type positionRow struct {
	ID   int64  `db:"id_pozice"`
	Name string `db:"nazev"`
}

func (r *positionRow) toEntity() *entity.Position {
	return &entity.Position{ID: r.ID, Name: r.Name}
}

type customerRow struct {
	ID        int64  `db:"id_zakazniku"`
	Phone     *int64 `db:"telefon"`
	AddressID *int64 `db:"adresa_id_adresy"`
}

func (r *customerRow) toEntity() *entity.Customer {
	return &entity.Customer{
		ID:        r.ID,
		Phone:     deref(r.Phone),
		AddressID: entity.PositiveID(r.AddressID),
	}
}

type userRow struct {
	ID           int64   `db:"id_user"`
	FirstName    *string `db:"jmeno"`
	LastName     *string `db:"prijmeni"`
	Email        string  `db:"email"`
	PhoneNumber  *int64  `db:"tel_number"`
	PasswordHash *string `db:"password"`
	RoleID       *int64  `db:"role_id_role"`
	RoleName     *string `db:"rolename"`
	CustomerID   *int64  `db:"zakaznik_id_zakazniku"`
	EmployeeID   *int64  `db:"zamnestnanec_id_zamnestnance"`
}

func (r *userRow) toEntity() *entity.User {
	u := &entity.User{
		ID:           r.ID,
		FirstName:    deref(r.FirstName),
		LastName:     deref(r.LastName),
		Email:        r.Email,
		PhoneNumber:  entity.PositiveID(r.PhoneNumber),
		PasswordHash: deref(r.PasswordHash),
		RoleID:       deref(r.RoleID),
		CustomerID:   entity.PositiveID(r.CustomerID),
		EmployeeID:   entity.PositiveID(r.EmployeeID),
	}
	if r.RoleName != nil {
		u.RoleName = entity.NormalizeRole(*r.RoleName)
	}
	return u
}

type supermarketRow struct {
	ID        int64  `db:"id_supermarketu"`
	Name      string `db:"nazev"`
	Phone     *int64 `db:"telefon"`
	AddressID *int64 `db:"adresa_id_adresy"`
}

func (r *supermarketRow) toEntity() *entity.Supermarket {
	return &entity.Supermarket{ID: r.ID, Name: r.Name, Phone: r.Phone, AddressID: r.AddressID}
}

type warehouseRow struct {
	ID        int64  `db:"id_skladu"`
	Name      string `db:"nazev"`
	Capacity  *int64 `db:"kapacita"`
	Phone     *int64 `db:"telefon"`
	AddressID *int64 `db:"adresa_id_adresy"`
}

func (r *warehouseRow) toEntity() *entity.Warehouse {
	return &entity.Warehouse{ID: r.ID, Name: r.Name, Capacity: r.Capacity, Phone: r.Phone, AddressID: r.AddressID}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// mapRows converts scanned rows into entities.
func mapRows[R any, E any](rows []*R, conv func(*R) *E) []*E {
	out := make([]*E, 0, len(rows))
	for _, r := range rows {
		out = append(out, conv(r))
	}
	return out
}
