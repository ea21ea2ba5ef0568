// Package pdf renders reports with Maroto v2.
//
// Salary report layout (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: report title             │  generated at           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: ID | Surname, name | Position | Salary              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: headcount / salary total / average                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/bdas-dva/retail-api/internal/application/usecase"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

var _ usecase.SalaryReportGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// MarotoReportGenerator implements usecase.SalaryReportGenerator.
type MarotoReportGenerator struct {
	company string
}

// NewMarotoReportGenerator builds the generator; company is printed in the header.
func NewMarotoReportGenerator(company string) *MarotoReportGenerator {
	return &MarotoReportGenerator{company: company}
}

// GenerateSalaryReport renders one table row per employee plus totals.
func (g *MarotoReportGenerator) GenerateSalaryReport(
	_ context.Context,
	rows []*entity.EmployeeSalary,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Prehled mezd", true).
		WithAuthor(pdfText(g.company), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.company, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate salary report: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(company string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("PREHLED MEZD ZAMESTNANCU", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(pdfText(company), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Vygenerovano: "+at.Format("02.01.2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Prijmeni, jmeno", 5, align.Left),
		h("Pozice", 3, align.Left),
		h("Mzda (Kc)", 3, align.Right),
	)
}

func tableRows(rows []*entity.EmployeeSalary) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		rw := row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.EmployeeID), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(pdfText(fullName(r)), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(pdfText(nonEmpty(r.PositionName, "-")), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(salaryText(r.Salary), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if i%2 == 1 {
			rw.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		out = append(out, rw)
	}
	return out
}

// salaryTotals sums the known salaries; the average ignores employees without one.
func salaryTotals(rows []*entity.EmployeeSalary) (total, avg decimal.Decimal) {
	paid := 0
	for _, r := range rows {
		if r.Salary == nil {
			continue
		}
		total = total.Add(*r.Salary)
		paid++
	}
	if paid > 0 {
		avg = total.Div(decimal.NewFromInt(int64(paid)))
	}
	return total, avg
}

func totalsRow(rows []*entity.EmployeeSalary) core.Row {
	total, avg := salaryTotals(rows)
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Pocet zamestnancu:"),
			label("Mzdy celkem:"),
			label("Prumerna mzda:"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", len(rows))),
			value(formatCZK(total)),
			value(formatCZK(avg)),
		),
	)
}

func salaryText(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return formatCZK(*d)
}

func fullName(r *entity.EmployeeSalary) string {
	return strings.Trim(r.LastName+", "+r.FirstName, ", ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// pdfText strips diacritics; the built-in helvetica only covers cp1252
// and would garble ř, ě, č and friends.
func pdfText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// formatCZK formats an amount the Czech way: "1 234 567,50".
func formatCZK(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
