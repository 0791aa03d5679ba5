package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	ExportUC  *usecase.ExportUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo público: vista, búsqueda, filtros, paginación y load-more
	catalogGroup := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup.Get("/", catalogHandler.View)
	catalogGroup.Put("/search", catalogHandler.SetSearch)
	catalogGroup.Post("/filters/category", catalogHandler.ToggleCategory)
	catalogGroup.Post("/filters/brand", catalogHandler.ToggleBrand)
	catalogGroup.Delete("/filters", catalogHandler.ResetFilters)
	catalogGroup.Put("/page", catalogHandler.SetPage)
	catalogGroup.Post("/page/next", catalogHandler.NextPage)
	catalogGroup.Post("/page/prev", catalogHandler.PrevPage)
	catalogGroup.Post("/load-more", catalogHandler.LoadMore)

	// Panel de administración (protegido: mutaciones, dashboard y export)
	adminGroup := api.Group("/admin", AuthMiddleware(deps.JWTSecret))
	adminHandler := NewAdminHandler(deps.CatalogUC, deps.ExportUC)
	adminGroup.Post("/products", adminHandler.Create)
	adminGroup.Put("/products/:id", adminHandler.Update)
	adminGroup.Delete("/products/:id", adminHandler.Delete)
	adminGroup.Get("/dashboard", adminHandler.Dashboard)
	adminGroup.Get("/export", adminHandler.Export)
}
