package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockTotalDTO existencias agregadas de un SKU en toda la marca.
type StockTotalDTO struct {
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	TotalQty   decimal.Decimal `json:"total_quantity"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// RecentPurchaseDTO compra reciente del tablero central.
type RecentPurchaseDTO struct {
	Code     string          `json:"code"`
	Supplier string          `json:"supplier"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
}

// ActiveProductionDTO orden activa en un taller de la marca.
type ActiveProductionDTO struct {
	Code     string          `json:"code"`
	Workshop string          `json:"workshop"`
	Product  string          `json:"product"`
	Planned  decimal.Decimal `json:"planned"`
	Finished decimal.Decimal `json:"finished"`
	Status   string          `json:"status"`
	DueDate  time.Time       `json:"due_date"`
}

// WorkshopSummaryDTO taller listado en el tablero central.
type WorkshopSummaryDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CentralDashboardResponse tablero de la bodega central de una marca.
type CentralDashboardResponse struct {
	Info             WarehouseResponse     `json:"info"`
	Workshops        []WorkshopSummaryDTO  `json:"workshops"`
	TotalInventory   []StockTotalDTO       `json:"total_inventory"`
	RecentPurchases  []RecentPurchaseDTO   `json:"recent_purchases"`
	ActiveProduction []ActiveProductionDTO `json:"active_production"`
}

// WorkshopStockDTO existencias valorizadas de una bodega puntual.
type WorkshopStockDTO struct {
	SKU   string          `json:"sku"`
	Name  string          `json:"name"`
	Unit  string          `json:"unit"`
	Qty   decimal.Decimal `json:"qty"`
	Value decimal.Decimal `json:"value"`
	Type  string          `json:"type"`
}

// WorkshopDetailResponse detalle de un taller: existencias y producción.
type WorkshopDetailResponse struct {
	Info            WarehouseResponse         `json:"info"`
	Inventory       []WorkshopStockDTO        `json:"inventory"`
	Production      []ProductionOrderResponse `json:"production"`
	TotalAssetValue decimal.Decimal           `json:"total_asset_value"`
}
