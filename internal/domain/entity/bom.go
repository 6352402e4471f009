package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMLine materia prima requerida por una unidad del producto de salida.
type BOMLine struct {
	MaterialVariantID string
	QuantityNeeded    decimal.Decimal
}

// BOM (bill of materials) es la receta fija de materias primas para producir
// una unidad de un SKU terminado.
type BOM struct {
	ID              string
	Name            string
	OutputVariantID string
	Lines           []BOMLine
	CreatedAt       time.Time
}
