package postgres

import (
	"context"
	"fmt"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository over proc_zakaznik_cud / proc_zakaznik_r.
type CustomerRepo struct {
	proc *ProcRunner
}

// NewCustomerRepository builds the customer persistence adapter.
func NewCustomerRepository(proc *ProcRunner) *CustomerRepo {
	return &CustomerRepo{proc: proc}
}

// Create inserts the customer and returns the id assigned by the database.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) (int64, error) {
	var id *int64
	err := r.proc.Call(ctx, Call("proc_zakaznik_cud",
		In("p_action", ActionInsert),
		Out("p_id_zakazniku"),
		In("p_telefon", c.Phone),
		In("p_adresa_id_adresy", entity.PositiveID(c.AddressID)),
	), &id)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, fmt.Errorf("proc_zakaznik_cud: procedure returned no id")
	}
	c.ID = *id
	return *id, nil
}

// Update overwrites phone and address of the customer c.ID.
// The id is an INOUT parameter, so the procedure echoes it back.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	var echoed *int64
	return r.proc.Call(ctx, Call("proc_zakaznik_cud",
		In("p_action", ActionUpdate),
		In("p_id_zakazniku", c.ID),
		In("p_telefon", c.Phone),
		In("p_adresa_id_adresy", entity.PositiveID(c.AddressID)),
	), &echoed)
}

// Delete removes the customer.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	var echoed *int64
	return r.proc.Call(ctx, Call("proc_zakaznik_cud",
		In("p_action", ActionDelete),
		In("p_id_zakazniku", id),
		In("p_telefon", nil),
		In("p_adresa_id_adresy", nil),
	), &echoed)
}

// GetByID returns nil, nil when the customer does not exist.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return r.first(ctx, &id, nil)
}

// GetByPhone returns nil, nil when no customer has the phone number.
func (r *CustomerRepo) GetByPhone(ctx context.Context, phone int64) (*entity.Customer, error) {
	return r.first(ctx, nil, &phone)
}

// List returns customers, at most limit of them when limit is set.
func (r *CustomerRepo) List(ctx context.Context, limit *int32) ([]*entity.Customer, error) {
	return r.read(ctx, nil, nil, entity.PositiveInt32(limit))
}

// AddressID resolves the address of a customer; nil when the customer has none.
func (r *CustomerRepo) AddressID(ctx context.Context, customerID int64) (*int64, error) {
	var addressID *int64
	err := r.proc.Call(ctx, Call("proc_get_adresa_id_by_zakaznik_id",
		In("p_id_zakazniku", customerID),
		Out("p_adresa_id_adresy"),
	), &addressID)
	if err != nil {
		return nil, err
	}
	return entity.PositiveID(addressID), nil
}

func (r *CustomerRepo) first(ctx context.Context, id, phone *int64) (*entity.Customer, error) {
	one := int32(1)
	list, err := r.read(ctx, id, phone, &one)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *CustomerRepo) read(ctx context.Context, id, phone *int64, limit *int32) ([]*entity.Customer, error) {
	rows, err := fetchCursor[customerRow](ctx, r.proc, Call("proc_zakaznik_r",
		In("p_id_zakazniku", id),
		In("p_telefon", phone),
		In("p_limit", limit),
		Out("p_cursor"),
	))
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*customerRow).toEntity), nil
}
