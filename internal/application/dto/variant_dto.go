package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantFields campos comunes de un SKU.
type VariantFields struct {
	SKU       string          `json:"sku" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=material product"`
	Attribute string          `json:"attribute"`
	Unit      string          `json:"unit"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Note      string          `json:"note"`
}

// VariantColorRequest variante de color dentro de una creación múltiple.
type VariantColorRequest struct {
	SKU       string `json:"sku" validate:"required"`
	Attribute string `json:"attribute" validate:"required"`
	Name      string `json:"name"`
}

// CreateVariantRequest payload de creación con dos formas: un solo SKU
// (campos directos) o una base más lista de variantes de color, expandida en
// N creaciones independientes. Variants vacío = forma simple.
type CreateVariantRequest struct {
	VariantFields
	Variants []VariantColorRequest `json:"variants"`
}

// IsMultiVariant indica la forma del payload.
func (r *CreateVariantRequest) IsMultiVariant() bool {
	return len(r.Variants) > 0
}

// VariantResponse salida de un SKU.
type VariantResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Attribute string          `json:"attribute"`
	Unit      string          `json:"unit"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// VariantListResponse lista paginada de SKUs.
type VariantListResponse struct {
	Items []VariantResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// MaterialGroupItemRequest SKU con multiplicador dentro de un grupo.
type MaterialGroupItemRequest struct {
	VariantID  string          `json:"variant_id" validate:"required"`
	Multiplier decimal.Decimal `json:"multiplier" validate:"required"`
}

// CreateMaterialGroupRequest entrada para crear un grupo de materiales (kit).
type CreateMaterialGroupRequest struct {
	Name  string                     `json:"name" validate:"required"`
	Items []MaterialGroupItemRequest `json:"items" validate:"required,min=1"`
}

// MaterialGroupResponse salida de un grupo.
type MaterialGroupResponse struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	Items     []MaterialGroupItemRequest `json:"items"`
	CreatedAt time.Time                  `json:"created_at"`
}
