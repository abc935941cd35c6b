package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/horeca-stock/internal/application/auth"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	SaleUC     *usecase.SaleUseCase
	FinanceUC  *usecase.FinanceUseCase
	CalendarUC *usecase.CalendarUseCase
	AssistUC   *usecase.AssistUseCase
	MarketUC   *usecase.MarketUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Categorías y editor de esquema (protegido; el editor es solo admin)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)
	categories.Get("/:id/effective-fields", categoryHandler.EffectiveFields)
	categories.Post("/:id/types", adminOnly, categoryHandler.AddProductType)
	categories.Delete("/:id/types/:value", adminOnly, categoryHandler.RemoveProductType)
	categories.Post("/:id/types/:value/fields", adminOnly, categoryHandler.AddTypeField)
	categories.Delete("/:id/types/:value/fields/:name", adminOnly, categoryHandler.RemoveTypeField)
	categories.Post("/:id/fields", adminOnly, categoryHandler.AddDefaultField)
	categories.Delete("/:id/fields/:name", adminOnly, categoryHandler.RemoveDefaultField)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Post("/import", productHandler.ImportCSV)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Ventas (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Finanzas (protegido; los totales son solo admin)
	finance := protected.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	finance.Post("/entries", financeHandler.Create)
	finance.Get("/entries", financeHandler.ListByPeriod)
	finance.Delete("/entries/:id", adminOnly, financeHandler.Delete)
	finance.Get("/summary", adminOnly, financeHandler.MonthlySummary)

	// Agenda (protegido)
	calendar := protected.Group("/calendar")
	calendarHandler := NewCalendarHandler(deps.CalendarUC)
	calendar.Post("/events", calendarHandler.Create)
	calendar.Put("/events/:id", calendarHandler.Update)
	calendar.Delete("/events/:id", calendarHandler.Delete)
	calendar.Get("/digest", calendarHandler.Digest)

	// Asistencia IA (protegido)
	assist := protected.Group("/assist")
	assistHandler := NewAssistHandler(deps.AssistUC)
	assist.Post("/extract", assistHandler.Extract)
	assist.Post("/transcribe", assistHandler.Transcribe)

	// Precios de mercado (protegido)
	market := protected.Group("/market")
	marketHandler := NewMarketHandler(deps.MarketUC)
	market.Get("/prices", marketHandler.ResearchPrices)
}
