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
	"github.com/wcondori/api-saltenas/internal/application/analytics"
	"github.com/wcondori/api-saltenas/internal/application/inventory"
	"github.com/wcondori/api-saltenas/internal/application/usecase"
	"github.com/wcondori/api-saltenas/internal/domain/repository"
	"github.com/wcondori/api-saltenas/internal/infrastructure/memory"
	infrapdf "github.com/wcondori/api-saltenas/internal/infrastructure/pdf"
	"github.com/wcondori/api-saltenas/internal/infrastructure/postgres"
	httpRouter "github.com/wcondori/api-saltenas/internal/interfaces/http"
	"github.com/wcondori/api-saltenas/pkg/config"
	"github.com/wcondori/api-saltenas/pkg/logger"
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

	var (
		productRepo repository.ProductRepository
		movRepo     repository.MovementRepository
		txRunner    usecase.TxRunner
	)
	if cfg.DB.Configured() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
		movRepo = postgres.NewMovementRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	} else {
		// Modo demo: todo en memoria, se pierde al reiniciar
		log.Warn().Msg("sin DATABASE_URL: usando almacenamiento en memoria")
		store := memory.NewStore()
		productRepo = memory.NewProductRepository(store)
		movRepo = memory.NewMovementRepository(store)
		txRunner = memory.NewTxRunner(store)
	}

	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	recordUC := inventory.NewRecordMovementUseCase(productRepo, movRepo)
	stockUC := inventory.NewStockUseCase(productRepo, movRepo)
	reportUC := analytics.NewReportUseCase(productRepo, movRepo)
	inventoryPDFUC := analytics.NewInventoryPDFUseCase(stockUC, infrapdf.NewMarotoInventoryPDF())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "API Salteñas",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		StockUC:      stockUC,
		RecordUC:     recordUC,
		ReportUC:     reportUC,
		InventoryPDF: inventoryPDFUC,
		JWTSecret:    cfg.Auth.JWTSecret,
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
