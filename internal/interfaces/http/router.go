package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketplace-api/internal/application/auth"
	"github.com/jhoicas/marketplace-api/internal/application/authz"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *usecase.DashboardUseCase
	CatalogUC   *usecase.CatalogPDFUseCase
	Gate        *authz.Gate
	JWTSecret   string
}

// Router registra las rutas de la API. Las rutas estáticas de products van
// antes de las rutas con :id para que Fiber no las capture como parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.ProductUC, deps.CatalogUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	adminHandler := NewAdminHandler(deps.UserUC, deps.ProductUC, deps.DashboardUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Listado público de aprobados (sin token)
	api.Get("/products/public", productHandler.ListPublic)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil propio: cualquier rol aprovisionado
	anyRole := RequireRole(deps.Gate)
	protected.Get("/profile", anyRole, authHandler.Me)
	protected.Get("/auth/me", anyRole, authHandler.Me)

	// Products
	products := protected.Group("/products")
	products.Get("/pending", RequireRole(deps.Gate, entity.RoleAdmin, entity.RoleApprover), productHandler.ListPending)
	products.Get("/catalog.pdf", anyRole, productHandler.CatalogPDF)
	products.Post("/", RequireRole(deps.Gate, entity.RoleAdmin, entity.RoleEditor, entity.RoleApprover), productHandler.Create)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)
	canEdit := RequireRole(deps.Gate, entity.RoleAdmin, entity.RoleEditor, entity.RoleApprover)
	products.Patch("/:id", canEdit, productHandler.Update)
	products.Put("/:id", canEdit, productHandler.Update) // alias para clientes que envían PUT
	products.Delete("/:id", canEdit, productHandler.Delete)

	// Workflow (PATCH, con alias POST): el rol exacto por transición lo decide
	// la tabla de transiciones; el middleware solo corta los roles que no
	// participan en ninguna.
	canApprove := RequireRole(deps.Gate, entity.RoleAdmin, entity.RoleApprover)
	products.Patch("/:id/submit", canEdit, productHandler.Submit)
	products.Patch("/:id/approve", canApprove, productHandler.Approve)
	products.Patch("/:id/reject", canApprove, productHandler.Reject)
	products.Post("/:id/submit", canEdit, productHandler.Submit)
	products.Post("/:id/approve", canApprove, productHandler.Approve)
	products.Post("/:id/reject", canApprove, productHandler.Reject)

	// Dashboard enrutado por rol + variantes por rol exacto
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/", anyRole, dashboardHandler.Get)
	dashboard.Get("/admin", RequireRole(deps.Gate, entity.RoleAdmin), dashboardHandler.Get)
	dashboard.Get("/editor", RequireRole(deps.Gate, entity.RoleEditor), dashboardHandler.Get)
	dashboard.Get("/approver", RequireRole(deps.Gate, entity.RoleApprover), dashboardHandler.Get)
	dashboard.Get("/viewer", RequireRole(deps.Gate, entity.RoleViewer), dashboardHandler.Get)

	// Admin (solo rol admin)
	admin := protected.Group("/admin", RequireRole(deps.Gate, entity.RoleAdmin))
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/activities", adminHandler.Activities)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users", adminHandler.CreateUser)
	admin.Patch("/users/:id", adminHandler.UpdateUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/products/:id", adminHandler.GetProduct)
	admin.Patch("/products/:id", adminHandler.UpdateProduct)
	admin.Delete("/products/:id", adminHandler.DeleteProduct)
}
