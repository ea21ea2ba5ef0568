package postgres

import (
	"context"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo reads supermarkets and warehouses (sklady).
type StoreRepo struct {
	proc *ProcRunner
}

// NewStoreRepository builds the store lookup adapter.
func NewStoreRepository(proc *ProcRunner) *StoreRepo {
	return &StoreRepo{proc: proc}
}

// ListSupermarkets returns every supermarket ordered by id.
func (r *StoreRepo) ListSupermarkets(ctx context.Context) ([]*entity.Supermarket, error) {
	q := psql.Select("id_supermarketu", "nazev", "telefon", "adresa_id_adresy").
		From("supermarket").
		OrderBy("id_supermarketu")
	var rows []*supermarketRow
	if err := r.proc.Select(ctx, &rows, q); err != nil {
		return nil, err
	}
	return mapRows(rows, (*supermarketRow).toEntity), nil
}

// ListWarehouses returns every warehouse ordered by id.
func (r *StoreRepo) ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	q := psql.Select("id_skladu", "nazev", "kapacita", "telefon", "adresa_id_adresy").
		From("sklad").
		OrderBy("id_skladu")
	var rows []*warehouseRow
	if err := r.proc.Select(ctx, &rows, q); err != nil {
		return nil, err
	}
	return mapRows(rows, (*warehouseRow).toEntity), nil
}
