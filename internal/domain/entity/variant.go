package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de variante (SKU).
const (
	VariantTypeMaterial = "material" // materia prima: tela, botones, hilo
	VariantTypeProduct  = "product"  // producto terminado: camisa, vestido
)

// Variant representa un SKU del catálogo (materia prima o producto terminado).
// CostPrice es el costo promedio ponderado de referencia; el stock se maneja
// por bodega en Stock.
type Variant struct {
	ID        string
	SKU       string // código único
	Name      string
	Type      string // material | product
	Attribute string // color u otro atributo de la variante
	Unit      string // unidad de medida: m, unidad, kg
	CostPrice decimal.Decimal
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
