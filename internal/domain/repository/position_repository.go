package repository

import (
	"context"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

// PositionRepository persistence port for positions (pozice).
type PositionRepository interface {
	List(ctx context.Context) ([]*entity.Position, error)
	Create(ctx context.Context, p *entity.Position) error
	Update(ctx context.Context, p *entity.Position) error
	Delete(ctx context.Context, id int64) error
}
