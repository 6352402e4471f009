package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockTotalResult tonelaje y valor agregados de un SKU (proyección de solo lectura).
type StockTotalResult struct {
	VariantID   string
	SKU         string
	Name        string
	Unit        string
	TotalQty    decimal.Decimal
	TotalValue  decimal.Decimal
	VariantType string
}

// RecentPurchaseResult compra reciente para el tablero de la bodega central.
type RecentPurchaseResult struct {
	Code         string
	SupplierName string
	OrderDate    time.Time
	TotalAmount  decimal.Decimal
	Status       string
}

// ActiveProductionResult orden de producción activa en un taller de la marca.
type ActiveProductionResult struct {
	Code         string
	WorkshopName string
	ProductName  string
	Planned      decimal.Decimal
	Finished     decimal.Decimal
	Status       string
	DueDate      time.Time
}

// WarehouseStockResult existencias valorizadas de una bodega puntual.
type WarehouseStockResult struct {
	SKU         string
	Name        string
	Unit        string
	Quantity    decimal.Decimal
	Value       decimal.Decimal
	VariantType string
}

// ReportRepository agregaciones de solo lectura sobre el libro y las órdenes.
// Sin invariantes propios: consistencia con el libro al momento de la lectura.
type ReportRepository interface {
	BrandStockTotals(ctx context.Context, brandID string) ([]StockTotalResult, error)
	RecentPurchases(ctx context.Context, warehouseID string, limit int) ([]RecentPurchaseResult, error)
	ActiveProduction(ctx context.Context, brandID string) ([]ActiveProductionResult, error)
	WarehouseStock(ctx context.Context, warehouseID string) ([]WarehouseStockResult, error)
}
