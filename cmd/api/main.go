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

	appanalytics "github.com/perfumanager/pos-api/internal/application/analytics"
	"github.com/perfumanager/pos-api/internal/application/auth"
	"github.com/perfumanager/pos-api/internal/application/checkout"
	"github.com/perfumanager/pos-api/internal/application/usecase"
	infrapdf "github.com/perfumanager/pos-api/internal/infrastructure/pdf"
	"github.com/perfumanager/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/perfumanager/pos-api/internal/interfaces/http"
	"github.com/perfumanager/pos-api/pkg/config"
	"github.com/perfumanager/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Name: cfg.App.Name,
		Env:  cfg.App.Env,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	brandUC := usecase.NewBrandUseCase(brandRepo)
	lotUC := usecase.NewLotUseCase(lotRepo, productRepo, brandRepo, txRunner)
	saleUC := usecase.NewSaleUseCase(saleRepo, txRunner)
	checkoutUC := checkout.NewUseCase(productRepo, saleUC)

	reportUC := appanalytics.NewReportUseCase(saleRepo, productRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := appanalytics.NewPDFUseCase(reportUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware hace
	// panic si el archivo no existe, así que se monta solo cuando está.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Perfume POS API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		BrandUC:    brandUC,
		LotUC:      lotUC,
		SaleUC:     saleUC,
		CheckoutUC: checkoutUC,
		ReportUC:   reportUC,
		PDFUC:      pdfUC,
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
