package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bdas-dva/retail-api/internal/application/usecase"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
	"github.com/bdas-dva/retail-api/internal/infrastructure/pdf"
	"github.com/bdas-dva/retail-api/internal/testutil"
)

func fakeOpener(repo *testutil.EmployeeRepo) employeeOpener {
	return func(context.Context) (*usecase.EmployeeUseCase, func(), error) {
		return usecase.NewEmployeeUseCase(repo, pdf.NewMarotoReportGenerator("Test")), func() {}, nil
	}
}

func seededRepo() *testutil.EmployeeRepo {
	salary := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	boss := int64(1)
	return testutil.NewEmployeeRepo(testutil.NewUserRepo()).Seed(
		&entity.Employee{ID: 1, FirstName: "Karel", LastName: "Dvořák", Salary: salary("60000")},
		&entity.Employee{ID: 2, FirstName: "Petr", LastName: "Svoboda", Salary: salary("31000"), ManagerID: &boss},
		&entity.Employee{ID: 3, FirstName: "Lucie", LastName: "Černá", Salary: salary("32000"), ManagerID: &boss},
	)
}

func run(t *testing.T, open employeeOpener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, nil, "hash-password", "tajne-heslo")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(out), []byte("tajne-heslo")))
}

func TestAverageSalary(t *testing.T) {
	out, err := run(t, fakeOpener(seededRepo()), "avg-salary", "--id", "1")
	require.NoError(t, err)
	assert.Equal(t, "31500.00", out)
}

func TestSalaryIndex(t *testing.T) {
	repo := seededRepo()
	repo.IndexationResult = "Valorizace provedena pro 3 zaměstnanců."

	out, err := run(t, fakeOpener(repo), "salary-index", "--min", "2", "--max", "4")
	require.NoError(t, err)
	assert.Equal(t, repo.IndexationResult, out)
}

func TestSalaryIndex_Rejects(t *testing.T) {
	_, err := run(t, fakeOpener(seededRepo()), "salary-index", "--min", "5", "--max", "1")
	assert.Error(t, err)

	_, err = run(t, fakeOpener(seededRepo()), "salary-index", "--min", "abc", "--max", "1")
	assert.Error(t, err)

	_, err = run(t, fakeOpener(seededRepo()), "salary-index", "--min", "1")
	assert.Error(t, err, "--max is required")
}

func TestSalaryReport(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mzdy.pdf")
	out, err := run(t, fakeOpener(seededRepo()), "salary-report", "-o", target)
	require.NoError(t, err)
	assert.Equal(t, target, out)

	body, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}
