package repository

import (
	"context"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

// StoreRepository read-only access to supermarkets and warehouses.
type StoreRepository interface {
	ListSupermarkets(ctx context.Context) ([]*entity.Supermarket, error)
	ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error)
}
