package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func TestEmployeeNormalize_SentinelsBecomeNil(t *testing.T) {
	zero := decimal.Zero
	e := &entity.Employee{
		SupermarketID: ptr(int64(0)),
		WarehouseID:   ptr(int64(-5)),
		ManagerID:     ptr(int64(7)),
		AddressID:     ptr(int64(0)),
		PositionID:    ptr(int64(3)),
		Salary:        &zero,
		WorkHours:     ptr(int32(0)),
	}
	e.Normalize()

	assert.Nil(t, e.SupermarketID)
	assert.Nil(t, e.WarehouseID)
	assert.Nil(t, e.AddressID)
	assert.Nil(t, e.Salary)
	assert.Nil(t, e.WorkHours)
	if assert.NotNil(t, e.ManagerID) {
		assert.Equal(t, int64(7), *e.ManagerID)
	}
	if assert.NotNil(t, e.PositionID) {
		assert.Equal(t, int64(3), *e.PositionID)
	}
}

func TestManagerFlag(t *testing.T) {
	tests := []struct {
		name     string
		position *int64
		want     int
	}{
		{"no position", nil, 0},
		{"regular", ptr(int64(1)), 0},
		{"shift lead", ptr(entity.PositionShiftLead), 1},
		{"manager", ptr(entity.PositionManager), 1},
		{"other", ptr(int64(4)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entity.Employee{PositionID: tt.position}
			assert.Equal(t, tt.want, e.ManagerFlag())

			f := entity.EmployeeFilter{PositionID: tt.position}
			assert.Equal(t, tt.want, f.ManagerFlag())
		})
	}
}

func TestEmployeeFilterNormalize(t *testing.T) {
	f := entity.EmployeeFilter{
		ID:        ptr(int64(0)),
		FirstName: ptr("  "),
		LastName:  ptr(" Novák "),
		Limit:     ptr(int32(-1)),
	}
	f.Normalize()

	assert.Nil(t, f.ID)
	assert.Nil(t, f.FirstName)
	assert.Nil(t, f.Limit)
	if assert.NotNil(t, f.LastName) {
		assert.Equal(t, "Novák", *f.LastName)
	}
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, entity.RoleAdmin, entity.NormalizeRole("ROLE_ADMIN"))
	assert.Equal(t, entity.RoleEmployee, entity.NormalizeRole(" employee "))
	assert.Equal(t, entity.RoleUser, entity.NormalizeRole("role_user"))
}

func TestIDOrNil(t *testing.T) {
	assert.Nil(t, entity.IDOrNil(0))
	assert.Nil(t, entity.IDOrNil(-1))
	assert.Equal(t, int64(9), *entity.IDOrNil(9))
	assert.Nil(t, entity.StringOrNil(""))
}
