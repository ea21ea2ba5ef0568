package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/application/usecase"
	"github.com/bdas-dva/retail-api/internal/domain"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
	"github.com/bdas-dva/retail-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner runs the customer self-registration in one transaction.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		userRepo repository.UserRepository,
	) error) error
}

// AuthUseCase login and customer self-registration.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tx       TxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tx: tx, jwtCfg: jwtCfg}
}

// Login checks email and password and issues a token. Unknown email and wrong
// password both yield domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := findByEmail(ctx, uc.userRepo, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	withRole, err := uc.userRepo.GetWithRoleByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	user.RoleName = entity.RoleUser
	if withRole != nil && withRole.RoleName != "" {
		user.RoleName = entity.NormalizeRole(withRole.RoleName)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.RoleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: usecase.ToUserResponse(user)}, nil
}

// RegisterCustomer creates a customer and a USER account linked to it. Both are
// written in one transaction; a taken email returns domain.ErrEmailAlreadyExists.
func (uc *AuthUseCase) RegisterCustomer(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := findByEmail(ctx, uc.userRepo, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var resp dto.RegisterResponse
	err = uc.tx.RunRegistration(ctx, func(customerRepo repository.CustomerRepository, userRepo repository.UserRepository) error {
		customerID, err := customerRepo.Create(ctx, &entity.Customer{
			Phone:     in.Telefon,
			AddressID: entity.PositiveID(in.AdresaIdAdresy),
		})
		if err != nil {
			return err
		}
		user := &entity.User{
			FirstName:    strings.TrimSpace(in.Jmeno),
			LastName:     strings.TrimSpace(in.Prijmeni),
			Email:        strings.TrimSpace(in.Email),
			PhoneNumber:  entity.IDOrNil(in.Telefon),
			PasswordHash: string(hash),
			RoleID:       entity.RoleIDUser,
			CustomerID:   &customerID,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		created, err := findByEmail(ctx, userRepo, user.Email)
		if err != nil {
			return err
		}
		if created == nil {
			return fmt.Errorf("registered user %s not readable", user.Email)
		}
		resp = dto.RegisterResponse{IdUser: created.ID, IdZakazniku: customerID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// findByEmail searches by email and compares case-insensitively, so "Jana@X.cz"
// and "jana@x.cz" are the same account.
func findByEmail(ctx context.Context, repo repository.UserRepository, email string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	list, err := repo.Search(ctx, entity.UserFilter{Email: &email})
	if err != nil {
		return nil, err
	}
	fold := cases.Fold()
	want := fold.String(email)
	for _, u := range list {
		if fold.String(u.Email) == want {
			return u, nil
		}
	}
	return nil, nil
}
