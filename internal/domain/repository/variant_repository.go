package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/domain/entity"
)

// VariantRepository define el puerto de persistencia para Variant/SKU (DIP).
type VariantRepository interface {
	Create(variant *entity.Variant) error
	GetByID(id string) (*entity.Variant, error)
	GetBySKU(sku string) (*entity.Variant, error)
	Update(variant *entity.Variant) error
	// UpdateCost actualiza el costo promedio de referencia del SKU.
	UpdateCost(variantID string, cost decimal.Decimal) error
	List(variantType string, limit, offset int) ([]*entity.Variant, error)
}
