package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear (o reutilizar) un proveedor.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// PurchaseItemRequest línea de un recibo de compra.
type PurchaseItemRequest struct {
	VariantID string          `json:"variant_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

// CreatePurchaseRequest entrada para registrar un recibo de compra.
// SupplierID o SupplierName (creación idempotente por nombre normalizado).
type CreatePurchaseRequest struct {
	WarehouseID  string                `json:"warehouse_id" validate:"required"`
	SupplierID   string                `json:"supplier_id"`
	SupplierName string                `json:"supplier_name"`
	Code         string                `json:"po_code" validate:"required"`
	OrderDate    *time.Time            `json:"order_date"`
	Items        []PurchaseItemRequest `json:"items" validate:"required,min=1"`
}

// PurchaseItemResponse línea de compra en respuestas.
type PurchaseItemResponse struct {
	VariantID string          `json:"variant_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse salida de un recibo de compra.
type PurchaseResponse struct {
	ID          string                 `json:"id"`
	Code        string                 `json:"po_code"`
	WarehouseID string                 `json:"warehouse_id"`
	SupplierID  string                 `json:"supplier_id"`
	OrderDate   time.Time              `json:"order_date"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	Status      string                 `json:"status"`
	Items       []PurchaseItemResponse `json:"items,omitempty"`
}

// PurchaseListResponse lista paginada de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
