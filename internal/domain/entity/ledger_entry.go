package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento del libro de inventario.
const (
	EntryTypePurchaseIn    = "purchase_in"    // entrada por compra
	EntryTypeTransferOut   = "transfer_out"   // salida por traslado
	EntryTypeTransferIn    = "transfer_in"    // entrada por traslado
	EntryTypeProductionOut = "production_out" // consumo de materia prima
	EntryTypeProductionIn  = "production_in"  // entrada de producto terminado
)

// LedgerEntry representa un asiento inmutable del libro de inventario para un
// par (bodega, SKU). Las correcciones se registran como asientos compensatorios,
// nunca como ediciones.
type LedgerEntry struct {
	ID            string
	TransactionID string // agrupa los asientos de una misma operación lógica
	WarehouseID   string
	VariantID     string
	Type          string
	Quantity      decimal.Decimal // positivo entrada, negativo salida
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	SourceRef     string // id de la compra / traslado / lote de producción
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
