package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar saldos por bodega+SKU.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(warehouseID, variantID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(warehouseID, variantID string) (*entity.Stock, error)
	// TotalByWarehouse suma de cantidades en la bodega (para validar su borrado).
	TotalByWarehouse(warehouseID string) (decimal.Decimal, error)
}
