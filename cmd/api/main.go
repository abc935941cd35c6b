package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	"github.com/tu-usuario/horeca-stock/internal/application/auth"
	"github.com/tu-usuario/horeca-stock/internal/application/ports"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
	infraai "github.com/tu-usuario/horeca-stock/internal/infrastructure/ai"
	inframarket "github.com/tu-usuario/horeca-stock/internal/infrastructure/market"
	"github.com/tu-usuario/horeca-stock/internal/infrastructure/parsers"
	infrapdf "github.com/tu-usuario/horeca-stock/internal/infrastructure/pdf"
	"github.com/tu-usuario/horeca-stock/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/horeca-stock/internal/interfaces/http"
	"github.com/tu-usuario/horeca-stock/pkg/config"
	"github.com/tu-usuario/horeca-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Colaborador IA: si no hay API key los endpoints de asistencia responden
	// con error de configuración en lugar de fallar al arrancar.
	var extractor ports.ExtractionService
	var transcriber ports.TranscriptionService
	if cfg.AI.GeminiAPIKey != "" {
		gemini := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		extractor, transcriber = gemini, gemini
	} else {
		log.Warn().Msg("GEMINI_API_KEY no configurado: asistencia IA deshabilitada")
	}

	var marketSvc ports.MarketResearchService
	if cfg.Market.BaseURL != "" {
		marketSvc = inframarket.NewClient(cfg.Market.BaseURL, cfg.Market.APIKey)
	} else {
		log.Warn().Msg("MARKET_BASE_URL no configurado: investigación de precios deshabilitada")
	}

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	csvParser := parsers.NewProductCSVParser()

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, csvParser)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, productRepo, receiptGen)
	financeUC := usecase.NewFinanceUseCase(ledgerRepo)
	calendarUC := usecase.NewCalendarUseCase(eventRepo)
	assistUC := usecase.NewAssistUseCase(extractor, transcriber, categoryRepo)
	marketUC := usecase.NewMarketUseCase(marketSvc)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Job diario: loguea el resumen de agenda de los próximos días.
	digestLog := log.Component("digest")
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Digest.CronSpec, func() {
		digest, err := calendarUC.Digest(time.Now(), cfg.Digest.Days)
		if err != nil {
			digestLog.Error().Err(err).Msg("resumen de agenda")
			return
		}
		for _, day := range digest.Groups {
			for _, ev := range day.Events {
				digestLog.Info().
					Str("date", day.Date).
					Str("kind", ev.Kind).
					Str("title", ev.Title).
					Msg("evento pendiente")
			}
		}
	}); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.Digest.CronSpec).Msg("programar resumen diario")
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // fotos y audios en base64
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "HORECA Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		SaleUC:     saleUC,
		FinanceUC:  financeUC,
		CalendarUC: calendarUC,
		AssistUC:   assistUC,
		MarketUC:   marketUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
