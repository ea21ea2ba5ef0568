package repository

import (
	"context"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

// CustomerRepository persistence port for customers (zákazníci).
type CustomerRepository interface {
	// Create stores the customer and returns the generated id.
	Create(ctx context.Context, c *entity.Customer) (int64, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone int64) (*entity.Customer, error)
	// List returns at most limit customers; nil means no limit.
	List(ctx context.Context, limit *int32) ([]*entity.Customer, error)
	AddressID(ctx context.Context, customerID int64) (*int64, error)
}
