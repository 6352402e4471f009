package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

var _ repository.ProductionOrderRepository = (*ProductionOrderRepo)(nil)

// ProductionOrderRepo implementación de ProductionOrderRepository sobre PostgreSQL.
type ProductionOrderRepo struct {
	q Querier
}

// NewProductionOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionOrderRepository(q Querier) *ProductionOrderRepo {
	return &ProductionOrderRepo{q: q}
}

const productionOrderColumns = `id, code, warehouse_id, output_variant_id, bom_id, quantity_planned, quantity_finished, material_cost, status, start_date, due_date, created_at, updated_at`

func scanProductionOrder(row pgx.Row) (*entity.ProductionOrder, error) {
	var o entity.ProductionOrder
	err := row.Scan(&o.ID, &o.Code, &o.WarehouseID, &o.OutputVariantID, &o.BOMID,
		&o.QuantityPlanned, &o.QuantityFinished, &o.MaterialCost, &o.Status,
		&o.StartDate, &o.DueDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una orden nueva (estado draft).
func (r *ProductionOrderRepo) Create(order *entity.ProductionOrder) error {
	query := `
		INSERT INTO production_orders (` + productionOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Code, order.WarehouseID, order.OutputVariantID, order.BOMID,
		order.QuantityPlanned, order.QuantityFinished, order.MaterialCost, order.Status,
		order.StartDate, order.DueDate, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert production order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *ProductionOrderRepo) GetByID(id string) (*entity.ProductionOrder, error) {
	query := `SELECT ` + productionOrderColumns + ` FROM production_orders WHERE id = $1`
	o, err := scanProductionOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production order: %w", err)
	}
	return o, nil
}

// GetByCode obtiene una orden por código único.
func (r *ProductionOrderRepo) GetByCode(code string) (*entity.ProductionOrder, error) {
	query := `SELECT ` + productionOrderColumns + ` FROM production_orders WHERE code = $1`
	o, err := scanProductionOrder(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production order by code: %w", err)
	}
	return o, nil
}

// GetForUpdate bloquea la fila de la orden durante una transición de estado.
func (r *ProductionOrderRepo) GetForUpdate(id string) (*entity.ProductionOrder, error) {
	query := `SELECT ` + productionOrderColumns + ` FROM production_orders WHERE id = $1 FOR UPDATE`
	o, err := scanProductionOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production order for update: %w", err)
	}
	return o, nil
}

// Update persiste estado, cantidades y fechas de la orden.
func (r *ProductionOrderRepo) Update(order *entity.ProductionOrder) error {
	query := `
		UPDATE production_orders
		SET quantity_planned = $2, quantity_finished = $3, material_cost = $4,
		    status = $5, start_date = $6, due_date = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		order.ID, order.QuantityPlanned, order.QuantityFinished, order.MaterialCost,
		order.Status, order.StartDate, order.DueDate, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete elimina una orden y su historial de recepciones. Solo para borradores;
// el caller valida el estado bajo bloqueo.
func (r *ProductionOrderRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM production_receives WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete production receives: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM production_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List lista órdenes, opcionalmente por bodega, más recientes primero.
func (r *ProductionOrderRepo) List(warehouseID string, limit, offset int) ([]*entity.ProductionOrder, error) {
	query := `SELECT ` + productionOrderColumns + ` FROM production_orders`
	args := []any{}
	if warehouseID != "" {
		query += ` WHERE warehouse_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, warehouseID, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.ProductionOrder
	for rows.Next() {
		var o entity.ProductionOrder
		if err := rows.Scan(&o.ID, &o.Code, &o.WarehouseID, &o.OutputVariantID, &o.BOMID,
			&o.QuantityPlanned, &o.QuantityFinished, &o.MaterialCost, &o.Status,
			&o.StartDate, &o.DueDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan production order: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// AddReceive registra una recepción parcial de la orden.
func (r *ProductionOrderRepo) AddReceive(record *entity.ReceiveRecord) error {
	query := `
		INSERT INTO production_receives (id, order_id, quantity, note, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.OrderID, record.Quantity, record.Note, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production receive: %w", err)
	}
	return nil
}

// ListReceives historial de recepciones de la orden en orden de llegada.
func (r *ProductionOrderRepo) ListReceives(orderID string) ([]*entity.ReceiveRecord, error) {
	query := `
		SELECT id, order_id, quantity, note, created_at
		FROM production_receives WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list production receives: %w", err)
	}
	defer rows.Close()

	var records []*entity.ReceiveRecord
	for rows.Next() {
		var rec entity.ReceiveRecord
		if err := rows.Scan(&rec.ID, &rec.OrderID, &rec.Quantity, &rec.Note, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production receive: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
