package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/cafes-platform-api/internal/application/analytics"
	"github.com/jhoicas/cafes-platform-api/internal/application/auth"
	"github.com/jhoicas/cafes-platform-api/internal/application/usecase"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	PartnershipUC *usecase.PartnershipUseCase
	DashboardUC   *analytics.DashboardUseCase
	SessionStore  *session.Store
	JWTSecret     string
}

// Router registra las rutas de la API. AuthMiddleware corre sobre todo /api:
// resuelve el actor (sesión de cookie o Bearer JWT) sin rechazar; cada grupo
// protegido cierra el paso con RequireRole.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.SessionStore, deps.JWTSecret))

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionStore)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", RequireLogin(), authHandler.Me)

	// Escaparate público (el detalle usa al actor, si lo hay, solo para la
	// visibilidad de anuncios no aprobados)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.ListApproved)
	products.Get("/categories", productHandler.Categories)
	products.Get("/catalog.pdf", productHandler.CatalogPDF)
	products.Get("/:id", productHandler.Get)

	// Vendedor
	vendor := api.Group("/vendor", RequireRole(entity.RoleVendor))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	partnershipHandler := NewPartnershipHandler(deps.PartnershipUC, deps.UserUC)
	vendor.Get("/dashboard", dashboardHandler.Vendor)
	vendor.Get("/products", productHandler.OwnAds)
	vendor.Post("/products", productHandler.Create)
	vendor.Put("/products/:id", productHandler.Update)
	vendor.Delete("/products/:id", productHandler.Delete)
	vendor.Get("/partnerships", partnershipHandler.VendorRequests)

	// Dueño de cafetería
	cafe := api.Group("/cafe", RequireRole(entity.RoleCafeOwner))
	cafe.Get("/vendors", partnershipHandler.Vendors)
	cafe.Get("/partnerships", partnershipHandler.OwnerRequests)
	cafe.Post("/partnerships", partnershipHandler.Create)

	// Administración
	admin := api.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.UserUC, deps.ProductUC, deps.PartnershipUC)
	admin.Get("/dashboard", dashboardHandler.Admin)
	admin.Get("/users", adminHandler.Users)
	admin.Patch("/users/:id/toggle-status", adminHandler.ToggleUserStatus)
	admin.Get("/products", adminHandler.Products)
	admin.Patch("/products/:id/approve", adminHandler.ApproveProduct)
	admin.Patch("/products/:id/reject", adminHandler.RejectProduct)
	admin.Get("/partnerships", adminHandler.Partnerships)
	admin.Patch("/partnerships/:id/approve", adminHandler.ApprovePartnership)
	admin.Patch("/partnerships/:id/reject", adminHandler.RejectPartnership)
}
