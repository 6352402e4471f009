package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el saldo actual del par (bodega, SKU). Sin fila devuelve saldo
// cero: la ausencia de movimientos equivale a cantidad 0 y costo 0.
func (r *StockRepo) Get(warehouseID, variantID string) (*entity.Stock, error) {
	query := `
		SELECT warehouse_id, variant_id, quantity, avg_cost, updated_at
		FROM stock WHERE warehouse_id = $1 AND variant_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, warehouseID, variantID).Scan(
		&s.WarehouseID, &s.VariantID, &s.Quantity, &s.AvgCost, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return emptyStock(warehouseID, variantID), nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza cantidad y costo promedio (por bodega y SKU).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (warehouse_id, variant_id, quantity, avg_cost, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (warehouse_id, variant_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, avg_cost = EXCLUDED.avg_cost, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		stock.WarehouseID, stock.VariantID, stock.Quantity, stock.AvgCost, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el saldo y bloquea la fila (SELECT FOR UPDATE).
// Si el par (bodega, SKU) aún no tiene fila la materializa en cero primero:
// FOR UPDATE sobre un resultado vacío no bloquea nada, y dos primeras
// entradas concurrentes se pisarían la una a la otra.
func (r *StockRepo) GetForUpdate(warehouseID, variantID string) (*entity.Stock, error) {
	seed := `
		INSERT INTO stock (warehouse_id, variant_id, quantity, avg_cost, updated_at)
		VALUES ($1, $2, 0, 0, now())
		ON CONFLICT (warehouse_id, variant_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), seed, warehouseID, variantID); err != nil {
		return nil, fmt.Errorf("seed stock for update: %w", err)
	}

	query := `
		SELECT warehouse_id, variant_id, quantity, avg_cost, updated_at
		FROM stock WHERE warehouse_id = $1 AND variant_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, warehouseID, variantID).Scan(
		&s.WarehouseID, &s.VariantID, &s.Quantity, &s.AvgCost, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// TotalByWarehouse suma de cantidades en la bodega (para validar su borrado).
func (r *StockRepo) TotalByWarehouse(warehouseID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stock WHERE warehouse_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, warehouseID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total stock by warehouse: %w", err)
	}
	return total, nil
}

func emptyStock(warehouseID, variantID string) *entity.Stock {
	return &entity.Stock{
		WarehouseID: warehouseID,
		VariantID:   variantID,
		Quantity:    decimal.Zero,
		AvgCost:     decimal.Zero,
	}
}
