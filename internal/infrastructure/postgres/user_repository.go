package postgres

import (
	"context"
	"errors"

	"github.com/bdas-dva/retail-api/internal/domain"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements UserRepository over the proc_user_* procedures.
type UserRepo struct {
	proc *ProcRunner
}

// NewUserRepository builds the user persistence adapter.
func NewUserRepository(proc *ProcRunner) *UserRepo {
	return &UserRepo{proc: proc}
}

// Create persists a new user. A taken email yields domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	err := r.proc.Exec(ctx, userCUD(ActionInsert, nil, u))
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.ErrEmailAlreadyExists
	}
	return err
}

// Update overwrites the user u.ID. An empty PasswordHash keeps the stored one.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	err := r.proc.Exec(ctx, userCUD(ActionUpdate, &u.ID, u))
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.ErrEmailAlreadyExists
	}
	return err
}

// Delete removes the user.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	return r.proc.Exec(ctx, userCUD(ActionDelete, &id, &entity.User{}))
}

func userCUD(action string, id *int64, u *entity.User) Procedure {
	return Call("proc_user_cud",
		In("p_action", action),
		In("p_id_user", id),
		In("p_jmeno", entity.StringOrNil(u.FirstName)),
		In("p_prijmeni", entity.StringOrNil(u.LastName)),
		In("p_email", entity.StringOrNil(u.Email)),
		In("p_tel_number", entity.PositiveID(u.PhoneNumber)),
		In("p_password", entity.StringOrNil(u.PasswordHash)),
		In("p_role_id_role", entity.IDOrNil(u.RoleID)),
		In("p_zakaznik_id_zakazniku", entity.PositiveID(u.CustomerID)),
		In("p_zamnestnanec_id_zamnestnance", entity.PositiveID(u.EmployeeID)),
	)
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	one := int32(1)
	list, err := r.List(ctx, &id, &one)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// List pages through users starting at startingID (inclusive).
func (r *UserRepo) List(ctx context.Context, startingID *int64, limit *int32) ([]*entity.User, error) {
	rows, err := fetchCursor[userRow](ctx, r.proc, Call("proc_user_r",
		In("p_id_user", entity.PositiveID(startingID)),
		In("p_limit", entity.PositiveInt32(limit)),
		Out("p_cursor"),
	))
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*userRow).toEntity), nil
}

// Search filters users by id, email and role.
func (r *UserRepo) Search(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error) {
	rows, err := fetchCursor[userRow](ctx, r.proc, Call("proc_user_r_filter",
		In("p_id_user", entity.PositiveID(filter.ID)),
		In("p_email", entity.NonEmpty(filter.Email)),
		In("p_role_id_role", entity.PositiveID(filter.RoleID)),
		In("p_limit", entity.PositiveInt32(filter.Limit)),
		Out("p_cursor"),
	))
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*userRow).toEntity), nil
}

// GetWithRoleByEmail returns the user with RoleName filled; nil, nil when unknown.
func (r *UserRepo) GetWithRoleByEmail(ctx context.Context, email string) (*entity.User, error) {
	rows, err := fetchCursor[userRow](ctx, r.proc, Call("proc_user_with_role_by_email",
		In("p_email", email),
		Out("p_cursor"),
	))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toEntity(), nil
}

// Overview returns user_view as generic column maps.
func (r *UserRepo) Overview(ctx context.Context) ([]map[string]any, error) {
	var rows []map[string]any
	if err := r.proc.Select(ctx, &rows, psql.Select("*").From("user_view")); err != nil {
		return nil, err
	}
	return rows, nil
}
