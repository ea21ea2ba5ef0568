package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bdas-dva/retail-api/internal/application/auth"
	"github.com/bdas-dva/retail-api/internal/application/usecase"
	infrapdf "github.com/bdas-dva/retail-api/internal/infrastructure/pdf"
	"github.com/bdas-dva/retail-api/internal/infrastructure/postgres"
	httpRouter "github.com/bdas-dva/retail-api/internal/interfaces/http"
	"github.com/bdas-dva/retail-api/pkg/config"
	"github.com/bdas-dva/retail-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// Salaries go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.Sentry.Enabled() {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			EnableTracing:    true,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
			Environment:      cfg.App.Env,
		}); err != nil {
			log.Error().Err(err).Msg("sentry init failed")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	proc := postgres.NewProcRunner(pool, log.Zerolog())
	employeeRepo := postgres.NewEmployeeRepository(proc)
	positionRepo := postgres.NewPositionRepository(proc)
	customerRepo := postgres.NewCustomerRepository(proc)
	userRepo := postgres.NewUserRepository(proc)
	storeRepo := postgres.NewStoreRepository(proc)
	txRunner := postgres.NewTxRunner(proc)

	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	if cfg.Sentry.Enabled() {
		app.Use(sentryfiber.New(sentryfiber.Options{Repanic: true}))
	}
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: httpRouter.RequestIDKey,
	}))
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Swagger UI at /docs, only when the swagger file is present.
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Retail API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger file not found, /docs disabled")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC: usecase.NewEmployeeUseCase(employeeRepo, reportGenerator),
		PositionUC: usecase.NewPositionUseCase(positionRepo),
		CustomerUC: usecase.NewCustomerUseCase(customerRepo),
		UserUC:     usecase.NewUserUseCase(userRepo),
		StoreUC:    usecase.NewStoreUseCase(storeRepo),
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
		AppName:    cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
