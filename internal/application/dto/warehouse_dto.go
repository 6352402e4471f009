package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest entrada para crear una bodega o taller.
type CreateWarehouseRequest struct {
	BrandID string `json:"brand_id" validate:"required"`
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Kind    string `json:"kind" validate:"required,oneof=central workshop"`
	Address string `json:"address"`
}

// UpdateWarehouseRequest solo nombre y dirección son mutables.
type UpdateWarehouseRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	BrandID   string    `json:"brand_id"`
	BrandName string    `json:"brand_name,omitempty"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Warning aviso no bloqueante (ej. segunda bodega central de la marca).
	Warning string `json:"warning,omitempty"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// TransferItemRequest línea de un traslado entre bodegas.
type TransferItemRequest struct {
	VariantID string          `json:"variant_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// TransferRequest entrada para un traslado entre bodegas.
type TransferRequest struct {
	FromWarehouseID string                `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   string                `json:"to_warehouse_id" validate:"required"`
	Items           []TransferItemRequest `json:"items" validate:"required,min=1"`
}
