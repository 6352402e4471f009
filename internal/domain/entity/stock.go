package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el saldo materializado de un SKU en una bodega.
// Derivado de los asientos del libro; AvgCost es el costo promedio ponderado
// del par (bodega, SKU). El saldo nunca puede quedar negativo tras una
// operación confirmada.
type Stock struct {
	WarehouseID string
	VariantID   string
	Quantity    decimal.Decimal
	AvgCost     decimal.Decimal
	UpdatedAt   time.Time
}
