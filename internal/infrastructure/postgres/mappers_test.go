package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestEmployeeRowToEntity(t *testing.T) {
	salary := decimal.RequireFromString("32000.50")
	row := employeeRow{
		ID:            11,
		WorkHours:     ptr(int32(40)),
		SupermarketID: ptr(int64(0)),
		WarehouseID:   ptr(int64(3)),
		FirstName:     ptr("Jana"),
		Salary:        &salary,
		PositionID:    ptr(int64(3)),
		Level:         ptr(2),
	}

	e := row.toEntity()
	assert.Equal(t, int64(11), e.ID)
	assert.Equal(t, "Jana", e.FirstName)
	assert.Equal(t, "", e.LastName)
	assert.Nil(t, e.SupermarketID)
	require.NotNil(t, e.WarehouseID)
	assert.Equal(t, int64(3), *e.WarehouseID)
	assert.True(t, salary.Equal(*e.Salary))
	assert.Equal(t, 1, e.ManagerFlag())

	node := row.toNode()
	assert.Equal(t, 2, node.Level)
	assert.Equal(t, int64(11), node.ID)
}

func TestEmployeeSalaryRowToEntity(t *testing.T) {
	salary := decimal.RequireFromString("28000")
	withSalary := (&employeeSalaryRow{EmployeeID: 1, FirstName: ptr("Eva"), Salary: &salary, PositionName: ptr("Skladník")}).toEntity()
	require.NotNil(t, withSalary.Salary)
	assert.True(t, salary.Equal(*withSalary.Salary))
	assert.Equal(t, "Skladník", withSalary.PositionName)

	noSalary := (&employeeSalaryRow{EmployeeID: 2, LastName: ptr("Novák")}).toEntity()
	assert.Nil(t, noSalary.Salary)
	assert.Equal(t, "Novák", noSalary.LastName)
	assert.Empty(t, noSalary.PositionName)
}

func TestUserRowToEntity(t *testing.T) {
	row := userRow{
		ID:         4,
		Email:      "petr@example.cz",
		RoleID:     ptr(int64(2)),
		RoleName:   ptr("ROLE_EMPLOYEE"),
		CustomerID: ptr(int64(0)),
		EmployeeID: ptr(int64(9)),
	}
	u := row.toEntity()
	assert.Equal(t, "EMPLOYEE", u.RoleName)
	assert.Equal(t, int64(2), u.RoleID)
	assert.Nil(t, u.CustomerID)
	assert.Equal(t, int64(9), *u.EmployeeID)
	assert.Empty(t, u.PasswordHash)
}

func TestCustomerRowToEntity(t *testing.T) {
	c := (&customerRow{ID: 1, Phone: ptr(int64(603123456)), AddressID: ptr(int64(0))}).toEntity()
	assert.Equal(t, int64(603123456), c.Phone)
	assert.Nil(t, c.AddressID)
}

func TestMapRows(t *testing.T) {
	rows := []*positionRow{{ID: 1, Name: "Pokladní"}, {ID: 2, Name: "Vedoucí směny"}}
	got := mapRows(rows, (*positionRow).toEntity)
	require.Len(t, got, 2)
	assert.Equal(t, "Vedoucí směny", got[1].Name)
	assert.Empty(t, mapRows([]*positionRow(nil), (*positionRow).toEntity))
}
