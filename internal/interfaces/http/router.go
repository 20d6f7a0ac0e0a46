package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/perfumanager/pos-api/internal/application/analytics"
	"github.com/perfumanager/pos-api/internal/application/auth"
	"github.com/perfumanager/pos-api/internal/application/checkout"
	"github.com/perfumanager/pos-api/internal/application/usecase"
	"github.com/perfumanager/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	BrandUC    *usecase.BrandUseCase
	LotUC      *usecase.LotUseCase
	SaleUC     *usecase.SaleUseCase
	CheckoutUC *checkout.UseCase
	ReportUC   *analytics.ReportUseCase
	PDFUC      *analytics.PDFUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products (protegido; escritura solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Patch("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Brands (protegido; escritura solo admin)
	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Get("/", brandHandler.List)
	brands.Post("/", adminOnly, brandHandler.Create)

	// Lots (protegido, solo admin: compras)
	lots := protected.Group("/lots", adminOnly)
	lotHandler := NewLotHandler(deps.LotUC)
	lots.Post("/", lotHandler.Create)
	lots.Get("/", lotHandler.List)
	lots.Get("/:id", lotHandler.GetByID)
	lots.Post("/:id/items", lotHandler.AddItems)

	// Sales (protegido, solo lectura; el checkout crea las ventas)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)

	// Cart (protegido; carrito por usuario)
	cart := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.CheckoutUC)
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.AddItem)
	cart.Patch("/items/:productId", cartHandler.UpdateItem)
	cart.Delete("/items/:productId", cartHandler.RemoveItem)
	cart.Post("/checkout", cartHandler.Checkout)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDFUC)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/sales/pdf", reportHandler.SalesPDF)
	reports.Get("/lots", lotHandler.Report)
}
