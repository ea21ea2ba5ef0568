package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/domain"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

const resourceUser = "uživatel"

// UserUseCase administration of user accounts.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create hashes the password and stores the user.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	if in.Password == "" {
		return domain.NewValidation("pole 'password' je povinné")
	}
	u, err := userFromRequest(0, in)
	if err != nil {
		return err
	}
	if u.RoleID <= 0 {
		u.RoleID = entity.RoleIDUser
	}
	return uc.repo.Create(ctx, u)
}

// Update overwrites the user. An empty password or a zero role keeps the stored value.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UserRequest) error {
	if id <= 0 {
		return domain.NewValidation("neplatné ID uživatele: %d", id)
	}
	if err := dto.Validate(in); err != nil {
		return err
	}
	u, err := userFromRequest(id, in)
	if err != nil {
		return err
	}
	return uc.repo.Update(ctx, u)
}

// Delete removes the user account.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidation("neplatné ID uživatele: %d", id)
	}
	return uc.repo.Delete(ctx, id)
}

// GetByID returns a NotFoundError when the user does not exist.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	if id <= 0 {
		return nil, domain.NewValidation("neplatné ID uživatele: %d", id)
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFound(resourceUser, "id", id)
	}
	resp := ToUserResponse(u)
	return &resp, nil
}

// List pages through users; startingID and limit <= 0 are ignored.
func (uc *UserUseCase) List(ctx context.Context, startingID int64, limit int32) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx, entity.IDOrNil(startingID), entity.PositiveInt32(&limit))
	if err != nil {
		return nil, err
	}
	return mapSlice(list, ToUserResponse), nil
}

// Search filters users by id, email and role.
func (uc *UserUseCase) Search(ctx context.Context, q dto.UserSearchQuery) ([]dto.UserResponse, error) {
	list, err := uc.repo.Search(ctx, entity.UserFilter{
		ID:     entity.PositiveID(q.ID),
		Email:  entity.NonEmpty(q.Email),
		RoleID: entity.PositiveID(q.RoleID),
		Limit:  entity.PositiveInt32(q.Limit),
	})
	if err != nil {
		return nil, err
	}
	return mapSlice(list, ToUserResponse), nil
}

// GetWithRoleByEmail returns the user together with the role name.
func (uc *UserUseCase) GetWithRoleByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidation("pole 'email' je povinné")
	}
	u, err := uc.repo.GetWithRoleByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFound(resourceUser, "email", email)
	}
	resp := ToUserResponse(u)
	return &resp, nil
}

// Overview returns user_view rows as they come from the database.
func (uc *UserUseCase) Overview(ctx context.Context) ([]map[string]any, error) {
	return uc.repo.Overview(ctx)
}

func userFromRequest(id int64, in dto.UserRequest) (*entity.User, error) {
	u := &entity.User{
		ID:          id,
		FirstName:   strings.TrimSpace(in.Jmeno),
		LastName:    strings.TrimSpace(in.Prijmeni),
		Email:       strings.TrimSpace(in.Email),
		PhoneNumber: entity.PositiveID(in.TelNumber),
		RoleID:      in.RoleIdRole,
		CustomerID:  entity.PositiveID(in.ZakaznikIdZakazniku),
		EmployeeID:  entity.PositiveID(in.ZamnestnanecIdZamnestnance),
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	return u, nil
}
