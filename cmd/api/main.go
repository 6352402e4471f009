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

	_ "github.com/jhoicas/textil-api/docs"
	appanalytics "github.com/jhoicas/textil-api/internal/application/analytics"
	"github.com/jhoicas/textil-api/internal/application/auth"
	"github.com/jhoicas/textil-api/internal/application/ledger"
	"github.com/jhoicas/textil-api/internal/application/production"
	"github.com/jhoicas/textil-api/internal/application/purchasing"
	"github.com/jhoicas/textil-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/textil-api/internal/infrastructure/pdf"
	"github.com/jhoicas/textil-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/textil-api/internal/interfaces/http"
	"github.com/jhoicas/textil-api/pkg/config"
	"github.com/jhoicas/textil-api/pkg/logger"
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

	brandRepo := postgres.NewBrandRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	materialGroupRepo := postgres.NewMaterialGroupRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	orderRepo := postgres.NewProductionOrderRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	draftRepo := postgres.NewDraftRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	brandUC := usecase.NewBrandUseCase(brandRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, brandRepo, stockRepo, cfg.App.EnforceSingleCentral)
	variantUC := usecase.NewVariantUseCase(variantRepo)
	materialGroupUC := usecase.NewMaterialGroupUseCase(materialGroupRepo, variantRepo)
	draftUC := usecase.NewDraftUseCase(draftRepo)
	transferUC := ledger.NewTransferUseCase(txRunner, warehouseRepo)
	purchasingUC := purchasing.NewUseCase(txRunner, warehouseRepo, poRepo, supplierRepo)
	productionUC := production.NewUseCase(txRunner, orderRepo, bomRepo, warehouseRepo, variantRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(warehouseRepo, brandRepo, reportRepo, orderRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: hoja imprimible de órdenes de producción
	sheetGenerator := infrapdf.NewMarotoSheetGenerator()

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
		Title:    "Textil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BrandUC:         brandUC,
		WarehouseUC:     warehouseUC,
		VariantUC:       variantUC,
		MaterialGroupUC: materialGroupUC,
		DraftUC:         draftUC,
		TransferUC:      transferUC,
		PurchasingUC:    purchasingUC,
		ProductionUC:    productionUC,
		SheetGenerator:  sheetGenerator,
		DashboardUC:     dashboardUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
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
