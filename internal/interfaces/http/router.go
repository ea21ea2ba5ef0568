package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bdas-dva/retail-api/internal/application/auth"
	"github.com/bdas-dva/retail-api/internal/application/usecase"
	"github.com/bdas-dva/retail-api/internal/domain/entity"
)

// RouterDeps dependencies of the router.
type RouterDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
	PositionUC *usecase.PositionUseCase
	CustomerUC *usecase.CustomerUseCase
	UserUC     *usecase.UserUseCase
	StoreUC    *usecase.StoreUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	AppName    string
}

// Router registers every API route. Static segments are registered before
// the :id routes of the same group so fiber matches them first.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	admin := RequireRole(entity.RoleAdmin)
	staff := RequireRole(entity.RoleEmployee, entity.RoleAdmin)
	anyone := RequireRole(entity.RoleUser, entity.RoleEmployee, entity.RoleAdmin)
	authn := AuthMiddleware(deps.JWTSecret)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/me", authn, anyone, authHandler.Me)

	// Positions live under the employee prefix.
	employees := api.Group("/zamestnanci", authn)
	positionHandler := NewPositionHandler(deps.PositionUC)
	employees.Get("/pozice", anyone, positionHandler.List)
	employees.Post("/pozice", admin, positionHandler.Create)
	employees.Put("/pozice/:id", admin, positionHandler.Update)
	employees.Delete("/pozice/:id", admin, positionHandler.Delete)

	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", staff, employeeHandler.List)
	employees.Post("/", admin, employeeHandler.Create)
	employees.Post("/link", admin, employeeHandler.LinkUser)
	employees.Post("/register", admin, employeeHandler.Register)
	employees.Post("/apply-salary-indexation", admin, employeeHandler.ApplySalaryIndexation)
	employees.Get("/all-salaries", admin, employeeHandler.AllSalaries)
	employees.Get("/all-salaries/pdf", admin, employeeHandler.AllSalariesPDF)
	employees.Get("/hierarchy/:id", staff, employeeHandler.Hierarchy)
	employees.Get("/:id/average-salary", staff, employeeHandler.AverageSalary)
	employees.Get("/:id/average-salary-procedure", staff, employeeHandler.AverageSalaryProcedure)
	employees.Get("/:id", staff, employeeHandler.GetByID)
	employees.Put("/:id", admin, employeeHandler.Update)
	employees.Delete("/:id", admin, employeeHandler.Delete)

	// Customers
	customers := api.Group("/zakaznici", authn)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", staff, customerHandler.List)
	customers.Post("/", staff, customerHandler.Create)
	customers.Get("/telefon/:telefon", staff, customerHandler.GetByPhone)
	customers.Get("/:id/adresa", staff, customerHandler.AddressID)
	customers.Get("/:id", staff, customerHandler.GetByID)
	customers.Put("/:id", staff, customerHandler.Update)
	customers.Delete("/:id", admin, customerHandler.Delete)

	// Users
	users := api.Group("/users", authn, admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/search", userHandler.Search)
	users.Get("/view", userHandler.View)
	users.Get("/role/:email", userHandler.RoleByEmail)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Stores
	storeHandler := NewStoreHandler(deps.StoreUC)
	api.Get("/supermarkets", authn, staff, storeHandler.Supermarkets)
	api.Get("/sklads", authn, staff, storeHandler.Warehouses)
}
