package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdas-dva/retail-api/internal/application/auth"
	"github.com/bdas-dva/retail-api/internal/application/usecase"
	"github.com/bdas-dva/retail-api/internal/domain"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/infrastructure/pdf"
	apphttp "github.com/bdas-dva/retail-api/internal/interfaces/http"
	"github.com/bdas-dva/retail-api/internal/testutil"
)

type server struct {
	app       *fiber.App
	employees *testutil.EmployeeRepo
	users     *testutil.UserRepo
	customers *testutil.CustomerRepo
}

func newServer(t *testing.T) *server {
	t.Helper()
	users := testutil.NewUserRepo()
	customers := testutil.NewCustomerRepo()
	employees := testutil.NewEmployeeRepo(users).Seed(
		&entity.Employee{ID: 1, FirstName: "Karel", LastName: "Dvořák", Salary: dec("50000"), PositionID: i64(3)},
		&entity.Employee{ID: 2, FirstName: "Petr", LastName: "Svoboda", Salary: dec("30000"), ManagerID: i64(1), PositionID: i64(2)},
		&entity.Employee{ID: 3, FirstName: "Lucie", LastName: "Černá", Salary: dec("50000"), ManagerID: i64(2)},
	)
	stores := &testutil.StoreRepo{
		Supermarkets: []*entity.Supermarket{{ID: 1, Name: "Albert Brno"}},
		Warehouses:   []*entity.Warehouse{{ID: 7, Name: "Sklad Jih", Capacity: i64(5000)}},
	}

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		EmployeeUC: usecase.NewEmployeeUseCase(employees, pdf.NewMarotoReportGenerator("Test s.r.o.")),
		PositionUC: usecase.NewPositionUseCase(testutil.NewPositionRepo()),
		CustomerUC: usecase.NewCustomerUseCase(customers),
		UserUC:     usecase.NewUserUseCase(users),
		StoreUC:    usecase.NewStoreUseCase(stores),
		AuthUC: auth.NewAuthUseCase(users, &testutil.TxRunner{Customers: customers, Users: users},
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 5, Issuer: testIssuer}),
		JWTSecret: testJWTSecret,
		AppName:   "retail-api-test",
	})
	return &server{app: app, employees: employees, users: users, customers: customers}
}

func (s *server) do(t *testing.T, method, path, role string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := s.app.Test(req, int((10 * time.Second).Milliseconds()))
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func i64(v int64) *int64 { return &v }

func TestHealth(t *testing.T) {
	s := newServer(t)
	resp, body := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestRoleMatrix(t *testing.T) {
	s := newServer(t)
	cases := []struct {
		method, path, role string
		want               int
	}{
		{http.MethodGet, "/api/zamestnanci", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/zamestnanci", "USER", http.StatusForbidden},
		{http.MethodGet, "/api/zamestnanci", "EMPLOYEE", http.StatusOK},
		{http.MethodGet, "/api/zamestnanci", "ADMIN", http.StatusOK},
		{http.MethodDelete, "/api/zamestnanci/3", "EMPLOYEE", http.StatusForbidden},
		{http.MethodGet, "/api/zamestnanci/all-salaries", "EMPLOYEE", http.StatusForbidden},
		{http.MethodGet, "/api/zamestnanci/pozice", "USER", http.StatusOK},
		{http.MethodPost, "/api/zamestnanci/pozice", "EMPLOYEE", http.StatusForbidden},
		{http.MethodGet, "/api/zakaznici", "USER", http.StatusForbidden},
		{http.MethodGet, "/api/zakaznici", "EMPLOYEE", http.StatusOK},
		{http.MethodDelete, "/api/zakaznici/1", "EMPLOYEE", http.StatusForbidden},
		{http.MethodGet, "/api/users", "EMPLOYEE", http.StatusForbidden},
		{http.MethodGet, "/api/users", "ADMIN", http.StatusOK},
		{http.MethodGet, "/api/supermarkets", "USER", http.StatusForbidden},
		{http.MethodGet, "/api/sklads", "EMPLOYEE", http.StatusOK},
		{http.MethodGet, "/api/auth/me", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path+" as "+tc.role, func(t *testing.T) {
			resp, body := s.do(t, tc.method, tc.path, tc.role, nil)
			assert.Equal(t, tc.want, resp.StatusCode, string(body))
		})
	}
}

func TestEmployees_CRUDRoundTrip(t *testing.T) {
	s := newServer(t)

	in := map[string]any{
		"jmeno":           "Tomáš",
		"prijmeni":        "Procházka",
		"datumZamestnani": "2023-04-01",
		"pracovnidoba":    40,
		"mzda":            41000.5,
		"skladIdSkladu":   7,
		"poziceIdPozice":  0,
	}
	resp, body := s.do(t, http.MethodPost, "/api/zamestnanci", "ADMIN", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = s.do(t, http.MethodGet, "/api/zamestnanci?prijmeni=Proch%C3%A1zka", "EMPLOYEE", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]map[string]any](t, body)
	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, "Tomáš", got["jmeno"])
	assert.Equal(t, "2023-04-01", got["datumZamestnani"])
	assert.EqualValues(t, 7, got["skladIdSkladu"])
	assert.Nil(t, got["poziceIdPozice"], "zero id is stored as absent")
	assert.Nil(t, got["supermarketIdSupermarketu"])

	id := int64(got["idZamestnance"].(float64))
	path := "/api/zamestnanci/" + jsonInt(id)

	resp, body = s.do(t, http.MethodPut, path, "ADMIN", map[string]any{"jmeno": "Tomáš", "prijmeni": "Horák"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	_, body = s.do(t, http.MethodGet, path, "ADMIN", nil)
	assert.Equal(t, "Horák", decode[map[string]any](t, body)["prijmeni"])

	resp, _ = s.do(t, http.MethodDelete, path, "ADMIN", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = s.do(t, http.MethodGet, path, "ADMIN", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "Nenalezeno")
}

func TestEmployees_BadInput(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/zamestnanci/abc", "ADMIN", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), apphttp.CodeValidation)

	resp, _ = s.do(t, http.MethodPost, "/api/zamestnanci", "ADMIN", map[string]any{"prijmeni": "Bez jména"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/zamestnanci", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "ADMIN"))
	r, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, r.StatusCode)
}

func TestEmployees_HierarchyAndAverage(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/zamestnanci/hierarchy/1", "EMPLOYEE", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	nodes := decode[[]map[string]any](t, body)
	require.Len(t, nodes, 3)
	assert.EqualValues(t, 1, nodes[0]["level"])

	resp, body = s.do(t, http.MethodGet, "/api/zamestnanci/1/average-salary", "EMPLOYEE", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	avg := decode[map[string]any](t, body)
	assert.Equal(t, "40000", avg["averageSalary"])

	resp, _ = s.do(t, http.MethodGet, "/api/zamestnanci/3/average-salary", "EMPLOYEE", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "leaf employee has no subordinates")
}

func TestEmployees_SalaryReportPDF(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/zamestnanci/all-salaries/pdf", "ADMIN", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "mzdy-")
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestEmployees_RegisterCreatesUserAndEmployee(t *testing.T) {
	s := newServer(t)
	before := s.employees.Count()

	resp, body := s.do(t, http.MethodPost, "/api/zamestnanci/register", "ADMIN", map[string]any{
		"jmeno":    "Eva",
		"prijmeni": "Malá",
		"email":    "eva.mala@example.cz",
		"password": "tajne-heslo",
		"mzda":     28000,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	out := decode[map[string]float64](t, body)
	assert.Positive(t, out["idUser"])
	assert.Positive(t, out["idZamestnance"])
	assert.Equal(t, before+1, s.employees.Count())
	assert.Equal(t, 1, s.users.Count())
}

func TestAuth_RegisterLoginMe(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"jmeno":    "Jan",
		"prijmeni": "Kovář",
		"email":    "jan.kovar@example.cz",
		"password": "heslo123",
		"telefon":  777123456,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"jmeno": "Jan", "prijmeni": "Kovář", "email": "JAN.KOVAR@example.cz", "password": "heslo123", "telefon": 777000111,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "jan.kovar@example.cz", "password": "heslo123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	login := decode[map[string]any](t, body)
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer r.Body.Close()
	require.Equal(t, http.StatusOK, r.StatusCode)
	me := decode[map[string]any](t, mustRead(t, r.Body))
	assert.Equal(t, "jan.kovar@example.cz", me["email"])
	assert.Equal(t, entity.RoleUser, me["role"])

	resp, _ = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "jan.kovar@example.cz", "password": "spatne",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCustomers_Lifecycle(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/zakaznici", "EMPLOYEE", map[string]any{"telefon": 602111222, "adresaIdAdresy": 9})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	id := int64(decode[map[string]any](t, body)["id"].(float64))

	resp, body = s.do(t, http.MethodGet, "/api/zakaznici/telefon/602111222", "EMPLOYEE", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, id, decode[map[string]any](t, body)["idZakazniku"])

	resp, body = s.do(t, http.MethodGet, "/api/zakaznici/"+jsonInt(id)+"/adresa", "EMPLOYEE", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 9, decode[map[string]any](t, body)["adresaIdAdresy"])

	resp, _ = s.do(t, http.MethodPost, "/api/zakaznici", "EMPLOYEE", map[string]any{"telefon": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodDelete, "/api/zakaznici/"+jsonInt(id), "ADMIN", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = s.do(t, http.MethodGet, "/api/zakaznici/"+jsonInt(id), "ADMIN", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListLimitOutOfRange(t *testing.T) {
	s := newServer(t)
	for _, phone := range []int{602000001, 602000002, 602000003} {
		resp, body := s.do(t, http.MethodPost, "/api/zakaznici", "EMPLOYEE", map[string]any{"telefon": phone})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := s.do(t, http.MethodGet, "/api/zakaznici?limit=2", "EMPLOYEE", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]map[string]any](t, body), 2)

	for _, path := range []string{
		"/api/zakaznici?limit=4294967297",
		"/api/zakaznici?limit=2147483648",
		"/api/users?limit=4294967297",
		"/api/zamestnanci?limit=4294967297",
	} {
		resp, body := s.do(t, http.MethodGet, path, "ADMIN", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Contains(t, string(body), apphttp.CodeValidation, path)
	}
}

func TestEmployees_SalaryOverviewWithMissingSalary(t *testing.T) {
	s := newServer(t)
	resp, body := s.do(t, http.MethodPost, "/api/zamestnanci", "ADMIN", map[string]any{"jmeno": "Ota", "prijmeni": "Beznosek", "mzda": 0})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = s.do(t, http.MethodGet, "/api/zamestnanci/all-salaries", "ADMIN", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	rows := decode[[]map[string]any](t, body)
	require.Len(t, rows, 4)
	var found bool
	for _, r := range rows {
		if r["prijmeni"] == "Beznosek" {
			found = true
			assert.Nil(t, r["mzda"])
		}
	}
	assert.True(t, found)

	resp, body = s.do(t, http.MethodGet, "/api/zamestnanci/all-salaries/pdf", "ADMIN", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestStores(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/sklads", "ADMIN", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]map[string]any](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, "Sklad Jih", list[0]["nazev"])
	assert.EqualValues(t, 5000, list[0]["kapacita"])
}

func TestDatabaseErrorIsNotLeaked(t *testing.T) {
	s := newServer(t)
	s.employees.Err = domain.NewDatabaseError("proc_zamnestnanec_r", errors.New("connection refused to 10.0.0.5"))

	resp, body := s.do(t, http.MethodGet, "/api/zamestnanci", "ADMIN", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), apphttp.CodeDatabase)
	assert.NotContains(t, string(body), "10.0.0.5")
}

func TestUnknownRoute(t *testing.T) {
	s := newServer(t)
	resp, body := s.do(t, http.MethodGet, "/api/neexistuje", "ADMIN", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), apphttp.CodeNotFound)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func mustRead(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}
