package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-escolar/internal/application/auth"
	"github.com/tu-usuario/inventario-escolar/internal/application/reports"
	"github.com/tu-usuario/inventario-escolar/internal/application/usecase"
	"github.com/tu-usuario/inventario-escolar/internal/domain/entity"
	"github.com/tu-usuario/inventario-escolar/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	UserUC         *usecase.UserUseCase
	CategoryUC     *usecase.CategoryUseCase
	ItemUC         *usecase.ItemUseCase
	RequestUC      *usecase.RequestUseCase
	DistributionUC *usecase.DistributionUseCase
	DashboardUC    *usecase.DashboardUseCase
	ReportsUC      *reports.UseCase
	Exporter       *reports.Exporter
	Log            *logger.Logger
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// Matriz de acceso:
//   - auth:            público
//   - lecturas:        cualquier usuario autenticado
//   - escrituras de inventario, aprobaciones, entregas y reportes: staff/admin
//   - usuarios y borrado de catálogo: solo admin
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	staff := RequireRole(entity.RoleAdmin, entity.RoleStaff)
	admin := RequireRole(entity.RoleAdmin)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", admin, userHandler.List)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", admin, categoryHandler.Create)
	categories.Put("/:id", admin, categoryHandler.Update)
	categories.Delete("/:id", admin, categoryHandler.Delete)

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Get("/:id/movements", staff, itemHandler.Movements)
	items.Post("/", staff, itemHandler.Create)
	items.Put("/:id", staff, itemHandler.Update)
	items.Post("/:id/adjust", staff, itemHandler.AdjustStock)
	items.Delete("/:id", admin, itemHandler.Delete)

	// Requests
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	requests.Post("/", requestHandler.Create)
	requests.Get("/", requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Post("/:id/approve", staff, requestHandler.Approve)
	requests.Post("/:id/reject", staff, requestHandler.Reject)
	requests.Post("/:id/cancel", requestHandler.Cancel)

	// Distributions
	distributions := protected.Group("/distributions", staff)
	distributionHandler := NewDistributionHandler(deps.DistributionUC)
	distributions.Post("/", distributionHandler.Create)
	distributions.Get("/", distributionHandler.List)
	distributions.Get("/:id", distributionHandler.GetByID)

	// Dashboard
	dashboard := protected.Group("/dashboard", staff)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Reports
	reportsGroup := protected.Group("/reports", staff)
	reportHandler := NewReportHandler(deps.ReportsUC, deps.Exporter, deps.Log)
	reportsGroup.Get("/inventory", reportHandler.Inventory)
	reportsGroup.Get("/movements", reportHandler.Movements)
	reportsGroup.Get("/requests", reportHandler.Requests)
	reportsGroup.Get("/distributions", reportHandler.Distributions)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
	reportsGroup.Get("/activity", reportHandler.Activity)
	reportsGroup.Post("/:kind/export", reportHandler.Export)
}
