package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/inventory-alerts/internal/application/alerts"
	"github.com/tu-usuario/inventory-alerts/internal/application/auth"
	"github.com/tu-usuario/inventory-alerts/internal/application/inventory"
	"github.com/tu-usuario/inventory-alerts/internal/application/usecase"
	infrapdf "github.com/tu-usuario/inventory-alerts/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventory-alerts/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventory-alerts/internal/interfaces/http"
	"github.com/tu-usuario/inventory-alerts/pkg/config"
	"github.com/tu-usuario/inventory-alerts/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	bundleRepo := postgres.NewBundleRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	createProductUC := inventory.NewCreateProductUseCase(txRunner, productRepo)
	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner)
	alertUC := alerts.NewLowStockAlertUseCase(alertRepo)
	reportUC := alerts.NewReportUseCase(alertUC, companyRepo, infrapdf.NewMarotoReportGenerator())

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, companyRepo)
	productUC := usecase.NewProductUseCase(productRepo, bundleRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
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

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		WarehouseUC:   warehouseUC,
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		CreateProduct: createProductUC,
		AdjustStock:   adjustStockUC,
		AlertUC:       alertUC,
		ReportUC:      reportUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
