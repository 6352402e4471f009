package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatusCompleted las compras no tienen estado borrador:
// el recibo se confirma al crearse.
const PurchaseOrderStatusCompleted = "completed"

// PurchaseOrderItem línea de una compra.
type PurchaseOrderItem struct {
	ID        string
	VariantID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// PurchaseOrder representa un recibo de compra a proveedor.
type PurchaseOrder struct {
	ID          string
	Code        string // código único, ej. PO-2025-001
	WarehouseID string
	SupplierID  string
	OrderDate   time.Time
	TotalAmount decimal.Decimal
	Status      string
	Items       []PurchaseOrderItem
	CreatedAt   time.Time
	CreatedBy   string
}
