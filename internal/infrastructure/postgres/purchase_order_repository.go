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

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const purchaseOrderColumns = `id, code, warehouse_id, supplier_id, order_date, total_amount, status, created_at, created_by`

// Create inserta la cabecera y sus líneas.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		po.ID, po.Code, po.WarehouseID, po.SupplierID, po.OrderDate,
		po.TotalAmount, po.Status, po.CreatedAt, po.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	for _, item := range po.Items {
		itemQuery := `
			INSERT INTO purchase_order_items (id, purchase_order_id, variant_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := r.q.Exec(ctx, itemQuery,
			item.ID, po.ID, item.VariantID, item.Quantity, item.UnitPrice, item.Subtotal,
		); err != nil {
			return fmt.Errorf("insert purchase order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la compra con sus líneas.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	return r.getBy(`id`, id)
}

// GetByCode obtiene la compra por código único.
func (r *PurchaseOrderRepo) GetByCode(code string) (*entity.PurchaseOrder, error) {
	return r.getBy(`code`, code)
}

func (r *PurchaseOrderRepo) getBy(column, value string) (*entity.PurchaseOrder, error) {
	ctx := context.Background()
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE ` + column + ` = $1`
	var po entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, value).Scan(
		&po.ID, &po.Code, &po.WarehouseID, &po.SupplierID, &po.OrderDate,
		&po.TotalAmount, &po.Status, &po.CreatedAt, &po.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	items, err := r.listItems(ctx, po.ID)
	if err != nil {
		return nil, err
	}
	po.Items = items
	return &po, nil
}

// List lista compras, opcionalmente por bodega, más recientes primero. Sin líneas.
func (r *PurchaseOrderRepo) List(warehouseID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders`
	args := []any{}
	if warehouseID != "" {
		query += ` WHERE warehouse_id = $1 ORDER BY order_date DESC LIMIT $2 OFFSET $3`
		args = append(args, warehouseID, limit, offset)
	} else {
		query += ` ORDER BY order_date DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.Code, &po.WarehouseID, &po.SupplierID, &po.OrderDate,
			&po.TotalAmount, &po.Status, &po.CreatedAt, &po.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		orders = append(orders, &po)
	}
	return orders, rows.Err()
}

func (r *PurchaseOrderRepo) listItems(ctx context.Context, poID string) ([]entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, variant_id, quantity, unit_price, subtotal
		FROM purchase_order_items WHERE purchase_order_id = $1`
	rows, err := r.q.Query(ctx, query, poID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()

	var items []entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.VariantID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
