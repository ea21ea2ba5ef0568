package usecase

import (
	"context"
	"time"

	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

// SalaryReportGenerator renders the salary overview as a document (PDF).
type SalaryReportGenerator interface {
	GenerateSalaryReport(ctx context.Context, rows []*entity.EmployeeSalary, generatedAt time.Time) ([]byte, error)
}
