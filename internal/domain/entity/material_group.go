package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialGroupItem un SKU dentro de un grupo con su multiplicador de cantidad.
type MaterialGroupItem struct {
	VariantID  string
	Multiplier decimal.Decimal
}

// MaterialGroup agrupa un conjunto fijo de SKUs con multiplicadores (kit).
// Composición de solo lectura: el grupo no maneja stock propio.
type MaterialGroup struct {
	ID        string
	Name      string
	Items     []MaterialGroupItem
	CreatedAt time.Time
}
