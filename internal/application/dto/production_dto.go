package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMLineRequest materia prima por unidad de salida.
type BOMLineRequest struct {
	MaterialVariantID string          `json:"material_variant_id" validate:"required"`
	QuantityNeeded    decimal.Decimal `json:"quantity_needed" validate:"required"`
}

// CreateBOMRequest entrada para crear una receta.
type CreateBOMRequest struct {
	Name            string           `json:"name" validate:"required"`
	OutputVariantID string           `json:"output_variant_id" validate:"required"`
	Materials       []BOMLineRequest `json:"materials" validate:"required,min=1"`
}

// BOMResponse salida de una receta.
type BOMResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	OutputVariantID string           `json:"output_variant_id"`
	Materials       []BOMLineRequest `json:"materials,omitempty"`
}

// CreateProductionOrderRequest entrada para crear una orden en borrador.
type CreateProductionOrderRequest struct {
	Code            string          `json:"code" validate:"required"`
	WarehouseID     string          `json:"warehouse_id" validate:"required"`
	OutputVariantID string          `json:"output_variant_id" validate:"required"`
	BOMID           string          `json:"bom_id" validate:"required"`
	QuantityPlanned decimal.Decimal `json:"quantity_planned" validate:"required"`
	StartDate       time.Time       `json:"start_date"`
	DueDate         time.Time       `json:"due_date"`
}

// UpdateProductionOrderRequest campos editables de una orden en borrador.
type UpdateProductionOrderRequest struct {
	QuantityPlanned *decimal.Decimal `json:"quantity_planned"`
	StartDate       *time.Time       `json:"start_date"`
	DueDate         *time.Time       `json:"due_date"`
}

// ReceiveGoodsRequest recepción parcial de producto terminado.
type ReceiveGoodsRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	Note     string          `json:"note"`
}

// QuickProductionRequest crea variante + receta + orden en una llamada.
type QuickProductionRequest struct {
	NewProductName  string           `json:"new_product_name" validate:"required"`
	NewProductSKU   string           `json:"new_product_sku" validate:"required"`
	OrderCode       string           `json:"order_code" validate:"required"`
	WarehouseID     string           `json:"warehouse_id" validate:"required"`
	QuantityPlanned decimal.Decimal  `json:"quantity_planned" validate:"required"`
	StartDate       time.Time        `json:"start_date"`
	DueDate         time.Time        `json:"due_date"`
	Materials       []BOMLineRequest `json:"materials" validate:"required,min=1"`
	AutoStart       bool             `json:"auto_start"`
}

// ProductionOrderResponse salida de una orden de producción.
type ProductionOrderResponse struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	WarehouseID      string          `json:"warehouse_id"`
	OutputVariantID  string          `json:"output_variant_id"`
	BOMID            string          `json:"bom_id"`
	QuantityPlanned  decimal.Decimal `json:"quantity_planned"`
	QuantityFinished decimal.Decimal `json:"quantity_finished"`
	Status           string          `json:"status"`
	StartDate        time.Time       `json:"start_date"`
	DueDate          time.Time       `json:"due_date"`
}

// ProductionRequirementResponse requerimiento total de materia prima.
type ProductionRequirementResponse struct {
	MaterialVariantID string          `json:"material_variant_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	QuantityPerUnit   decimal.Decimal `json:"quantity_per_unit"`
	TotalRequired     decimal.Decimal `json:"total_required"`
}

// ProductionOrderDetailsResponse orden con receta expandida.
type ProductionOrderDetailsResponse struct {
	Order        ProductionOrderResponse         `json:"order"`
	Requirements []ProductionRequirementResponse `json:"requirements"`
}

// ReceiveRecordResponse una recepción del historial.
type ReceiveRecordResponse struct {
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
