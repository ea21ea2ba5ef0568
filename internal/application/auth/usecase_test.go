package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdas-dva/retail-api/internal/application/auth"
	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/domain"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/testutil"
	"github.com/bdas-dva/retail-api/pkg/jwt"
)

const testSecret = "test-secret"

type fixture struct {
	uc        *auth.AuthUseCase
	users     *testutil.UserRepo
	customers *testutil.CustomerRepo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	users := testutil.NewUserRepo()
	customers := testutil.NewCustomerRepo()
	tx := &testutil.TxRunner{Customers: customers, Users: users}
	uc := auth.NewAuthUseCase(users, tx, auth.JWTConfig{Secret: testSecret, ExpMinutes: 5, Issuer: "test"})
	return fixture{uc: uc, users: users, customers: customers}
}

func registration() dto.RegisterRequest {
	return dto.RegisterRequest{
		Jmeno:    "Marie",
		Prijmeni: "Veselá",
		Email:    "marie@example.cz",
		Password: "heslo-marie",
		Telefon:  731555666,
	}
}

func TestRegisterThenLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.uc.RegisterCustomer(ctx, registration())
	require.NoError(t, err)
	assert.Positive(t, reg.IdUser)
	assert.Positive(t, reg.IdZakazniku)

	u, err := f.users.GetByID(ctx, reg.IdUser)
	require.NoError(t, err)
	require.NotNil(t, u.CustomerID)
	assert.Equal(t, reg.IdZakazniku, *u.CustomerID)
	assert.Equal(t, entity.RoleIDUser, u.RoleID)

	resp, err := f.uc.Login(ctx, dto.LoginRequest{Email: "Marie@Example.cz", Password: "heslo-marie"})
	require.NoError(t, err)
	assert.Equal(t, reg.IdUser, resp.User.IdUser)
	assert.Equal(t, entity.RoleUser, resp.User.RoleName)

	claims, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.IdUser, claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.Equal(t, "marie@example.cz", claims.Email)
}

func TestLogin_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.RegisterCustomer(ctx, registration())
	require.NoError(t, err)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "marie@example.cz", Password: "spatne"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "nikdo@example.cz", Password: "heslo-marie"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_UsesRoleFromRoleLookup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	reg, err := f.uc.RegisterCustomer(ctx, registration())
	require.NoError(t, err)

	u, _ := f.users.GetByID(ctx, reg.IdUser)
	u.RoleID = 3
	require.NoError(t, f.users.Update(ctx, u))

	resp, err := f.uc.Login(ctx, dto.LoginRequest{Email: "marie@example.cz", Password: "heslo-marie"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.User.RoleName)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.RegisterCustomer(ctx, registration())
	require.NoError(t, err)

	_, err = f.uc.RegisterCustomer(ctx, registration())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, 1, f.customers.Count())
}

func TestRegister_IsAtomic(t *testing.T) {
	f := newFixture(t)
	f.users.CreateErr = domain.NewDatabaseError("proc_user_cud", errors.New("boom"))

	_, err := f.uc.RegisterCustomer(context.Background(), registration())
	assert.ErrorIs(t, err, domain.ErrDatabase)
	assert.Zero(t, f.customers.Count(), "customer must be rolled back")
	assert.Zero(t, f.users.Count())
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)
	in := registration()
	in.Telefon = 0

	_, err := f.uc.RegisterCustomer(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "telefon")
}
