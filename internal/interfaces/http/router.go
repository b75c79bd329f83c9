package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allegrotrade/marketplace-api/internal/application/auth"
	"github.com/allegrotrade/marketplace-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CompanyUC   *usecase.CompanyUseCase
	InventoryUC *usecase.InventoryUseCase
	OrderUC     *usecase.OrderUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las lecturas del marketplace son
// públicas; las mutaciones requieren Bearer Token (presence check, sin RBAC).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Users (protegido)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/:id", protected, userHandler.GetByID)
	users.Put("/:id", protected, userHandler.Update)

	// Companies (lectura pública, mutación protegida)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", protected, companyHandler.Update)
	companies.Delete("/:id", protected, companyHandler.Delete)

	// Inventory (lectura pública, mutación protegida).
	// Las rutas específicas van antes de /:id para que Fiber no las capture.
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/search", inventoryHandler.Search)
	inventory.Get("/category/:category", inventoryHandler.ListByCategory)
	inventory.Get("/company/:id", inventoryHandler.ListByCompany)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Post("/", protected, inventoryHandler.Create)
	inventory.Put("/:id", protected, inventoryHandler.Update)
	inventory.Delete("/:id", protected, inventoryHandler.Delete)

	// Orders (protegido)
	orders := api.Group("/orders", protected)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/buyer/:id", orderHandler.ListByBuyer)
	orders.Get("/seller/:id", orderHandler.ListBySeller)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/:companyId", protected, dashboardHandler.Summary)
}
