package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

func TestGenerateSalaryReport(t *testing.T) {
	g := NewMarotoReportGenerator("Supermarkety s.r.o.")
	rows := []*entity.EmployeeSalary{
		{EmployeeID: 1, FirstName: "Jiří", LastName: "Řezníček", Salary: dec("45000.50"), PositionName: "Vedoucí"},
		{EmployeeID: 2, FirstName: "Eva", LastName: "Nováková", Salary: dec("32000")},
		{EmployeeID: 3, FirstName: "Petr", LastName: "Bez mzdy"},
	}

	out, err := g.GenerateSalaryReport(context.Background(), rows, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSalaryTotals_SkipsMissingSalaries(t *testing.T) {
	total, avg := salaryTotals([]*entity.EmployeeSalary{
		{EmployeeID: 1, Salary: dec("30000")},
		{EmployeeID: 2},
		{EmployeeID: 3, Salary: dec("40000")},
	})
	assert.Equal(t, "70000", total.String())
	assert.Equal(t, "35000", avg.String())

	total, avg = salaryTotals([]*entity.EmployeeSalary{{EmployeeID: 4}})
	assert.True(t, total.IsZero())
	assert.True(t, avg.IsZero())
	assert.Equal(t, "-", salaryText(nil))
	assert.Equal(t, "1 500,00", salaryText(dec("1500")))
}

func TestGenerateSalaryReport_Empty(t *testing.T) {
	out, err := NewMarotoReportGenerator("").GenerateSalaryReport(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatCZK(t *testing.T) {
	cases := map[string]string{
		"0":          "0,00",
		"999.5":      "999,50",
		"1000":       "1 000,00",
		"1234567.89": "1 234 567,89",
		"-45000":     "-45 000,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatCZK(decimal.RequireFromString(in)), in)
	}
}

func TestPdfText(t *testing.T) {
	assert.Equal(t, "Reznicek", pdfText("Řezníček"))
	assert.Equal(t, "Zlutoucky kun", pdfText("Žluťoučký kůň"))
}
