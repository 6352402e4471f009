package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/textil-api/internal/application/analytics"
	"github.com/jhoicas/textil-api/internal/application/auth"
	"github.com/jhoicas/textil-api/internal/application/ledger"
	"github.com/jhoicas/textil-api/internal/application/production"
	"github.com/jhoicas/textil-api/internal/application/purchasing"
	"github.com/jhoicas/textil-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BrandUC         *usecase.BrandUseCase
	WarehouseUC     *usecase.WarehouseUseCase
	VariantUC       *usecase.VariantUseCase
	MaterialGroupUC *usecase.MaterialGroupUseCase
	DraftUC         *usecase.DraftUseCase
	TransferUC      *ledger.TransferUseCase
	PurchasingUC    *purchasing.UseCase
	ProductionUC    *production.UseCase
	SheetGenerator  production.PrintSheetGenerator
	DashboardUC     *analytics.DashboardUseCase
	AuthUC          *auth.UseCase
	JWTSecret       string
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

	// Brands (protegido)
	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Post("/", brandHandler.Create)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)

	// Warehouses y traslados (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.TransferUC)
	warehouses.Post("/transfer", warehouseHandler.Transfer)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", RequireRole("admin"), warehouseHandler.Delete)

	// Materials: variantes y grupos (protegido)
	materials := protected.Group("/materials")
	variantHandler := NewVariantHandler(deps.VariantUC, deps.MaterialGroupUC)
	materials.Post("/groups", variantHandler.CreateGroup)
	materials.Get("/groups", variantHandler.ListGroups)
	materials.Post("/", variantHandler.Create)
	materials.Get("/", variantHandler.List)
	materials.Get("/:id", variantHandler.GetByID)
	materials.Put("/:id", variantHandler.Update)

	// Suppliers y compras (protegido)
	purchaseHandler := NewPurchaseHandler(deps.PurchasingUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", purchaseHandler.CreateSupplier)
	suppliers.Get("/", purchaseHandler.ListSuppliers)
	purchases := protected.Group("/purchases")
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)

	// Producción: recetas y órdenes (protegido)
	productionGroup := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC, deps.SheetGenerator)
	productionGroup.Post("/bom", productionHandler.CreateBOM)
	productionGroup.Get("/boms", productionHandler.ListBOMs)
	orders := productionGroup.Group("/orders")
	orders.Post("/quick", productionHandler.QuickCreate)
	orders.Post("/", productionHandler.CreateOrder)
	orders.Get("/", productionHandler.ListOrders)
	orders.Get("/:id/details", productionHandler.OrderDetails)
	orders.Get("/:id/history", productionHandler.OrderHistory)
	orders.Get("/:id/print", productionHandler.PrintOrder)
	orders.Post("/:id/start", productionHandler.StartOrder)
	orders.Post("/:id/receive", productionHandler.ReceiveGoods)
	orders.Post("/:id/complete", productionHandler.CompleteOrder)
	orders.Post("/:id/force-finish", productionHandler.ForceFinishOrder)
	orders.Put("/:id", productionHandler.UpdateOrder)
	orders.Delete("/:id", productionHandler.DeleteOrder)

	// Drafts (protegido)
	drafts := protected.Group("/drafts")
	draftHandler := NewDraftHandler(deps.DraftUC)
	drafts.Post("/", draftHandler.Create)
	drafts.Get("/", draftHandler.List)
	drafts.Get("/:id", draftHandler.GetByID)
	drafts.Put("/:id", draftHandler.Update)
	drafts.Patch("/:id/status", draftHandler.SetStatus)
	drafts.Delete("/:id", draftHandler.Delete)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.DashboardUC)
	reports.Get("/central/:id", reportHandler.Central)
	reports.Get("/workshop/:id", reportHandler.Workshop)
}
