// Command admin runs maintenance tasks against the retail database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bdas-dva/retail-api/internal/application/usecase"
	infrapdf "github.com/bdas-dva/retail-api/internal/infrastructure/pdf"
	"github.com/bdas-dva/retail-api/internal/infrastructure/postgres"
	"github.com/bdas-dva/retail-api/pkg/config"
	"github.com/bdas-dva/retail-api/pkg/logger"
)

func main() {
	if err := newRootCommand(openEmployees).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openEmployees connects to PostgreSQL and builds the employee use case.
func openEmployees(ctx context.Context) (*usecase.EmployeeUseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	proc := postgres.NewProcRunner(pool, log.Zerolog())
	uc := usecase.NewEmployeeUseCase(
		postgres.NewEmployeeRepository(proc),
		infrapdf.NewMarotoReportGenerator(cfg.App.Name),
	)
	return uc, pool.Close, nil
}
