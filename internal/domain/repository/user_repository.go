package repository

import (
	"context"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

// UserRepository persistence port for user accounts.
// PasswordHash on the entity is stored as given; hashing belongs to the callers.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context, startingID *int64, limit *int32) ([]*entity.User, error)
	Search(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error)
	// GetWithRoleByEmail fills RoleName as well.
	GetWithRoleByEmail(ctx context.Context, email string) (*entity.User, error)
	Overview(ctx context.Context) ([]map[string]any, error)
}
