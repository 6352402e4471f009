package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregaciones de solo lectura para los tableros.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// BrandStockTotals existencias agregadas por SKU en todas las bodegas de la marca,
// valorizadas al costo promedio por bodega.
func (r *ReportRepo) BrandStockTotals(ctx context.Context, brandID string) ([]repository.StockTotalResult, error) {
	const query = `
	SELECT
	    v.id,
	    v.sku,
	    v.name,
	    v.unit,
	    SUM(s.quantity)              AS total_qty,
	    SUM(s.quantity * s.avg_cost) AS total_value,
	    v.type
	FROM stock s
	JOIN warehouses w ON w.id = s.warehouse_id
	JOIN variants   v ON v.id = s.variant_id
	WHERE w.brand_id = $1
	GROUP BY v.id, v.sku, v.name, v.unit, v.type
	HAVING SUM(s.quantity) <> 0
	ORDER BY v.sku`

	rows, err := r.pool.Query(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("report.BrandStockTotals: %w", err)
	}
	defer rows.Close()

	var results []repository.StockTotalResult
	for rows.Next() {
		var row repository.StockTotalResult
		if err := rows.Scan(&row.VariantID, &row.SKU, &row.Name, &row.Unit,
			&row.TotalQty, &row.TotalValue, &row.VariantType); err != nil {
			return nil, fmt.Errorf("report.BrandStockTotals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// RecentPurchases últimas compras de una bodega con el nombre del proveedor.
func (r *ReportRepo) RecentPurchases(ctx context.Context, warehouseID string, limit int) ([]repository.RecentPurchaseResult, error) {
	const query = `
	SELECT po.code, s.name, po.order_date, po.total_amount, po.status
	FROM purchase_orders po
	JOIN suppliers s ON s.id = po.supplier_id
	WHERE po.warehouse_id = $1
	ORDER BY po.order_date DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, warehouseID, limit)
	if err != nil {
		return nil, fmt.Errorf("report.RecentPurchases: %w", err)
	}
	defer rows.Close()

	var results []repository.RecentPurchaseResult
	for rows.Next() {
		var row repository.RecentPurchaseResult
		if err := rows.Scan(&row.Code, &row.SupplierName, &row.OrderDate,
			&row.TotalAmount, &row.Status); err != nil {
			return nil, fmt.Errorf("report.RecentPurchases scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ActiveProduction órdenes no terminales en los talleres de la marca.
func (r *ReportRepo) ActiveProduction(ctx context.Context, brandID string) ([]repository.ActiveProductionResult, error) {
	const query = `
	SELECT o.code, w.name, v.name, o.quantity_planned, o.quantity_finished, o.status, o.due_date
	FROM production_orders o
	JOIN warehouses w ON w.id = o.warehouse_id
	JOIN variants   v ON v.id = o.output_variant_id
	WHERE w.brand_id = $1
	  AND o.status IN ($2, $3)
	ORDER BY o.due_date`

	rows, err := r.pool.Query(ctx, query, brandID,
		entity.ProductionStatusDraft, entity.ProductionStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("report.ActiveProduction: %w", err)
	}
	defer rows.Close()

	var results []repository.ActiveProductionResult
	for rows.Next() {
		var row repository.ActiveProductionResult
		if err := rows.Scan(&row.Code, &row.WorkshopName, &row.ProductName,
			&row.Planned, &row.Finished, &row.Status, &row.DueDate); err != nil {
			return nil, fmt.Errorf("report.ActiveProduction scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// WarehouseStock existencias valorizadas de una bodega puntual.
func (r *ReportRepo) WarehouseStock(ctx context.Context, warehouseID string) ([]repository.WarehouseStockResult, error) {
	const query = `
	SELECT v.sku, v.name, v.unit, s.quantity, s.quantity * s.avg_cost, v.type
	FROM stock s
	JOIN variants v ON v.id = s.variant_id
	WHERE s.warehouse_id = $1 AND s.quantity <> 0
	ORDER BY v.sku`

	rows, err := r.pool.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("report.WarehouseStock: %w", err)
	}
	defer rows.Close()

	var results []repository.WarehouseStockResult
	for rows.Next() {
		var row repository.WarehouseStockResult
		if err := rows.Scan(&row.SKU, &row.Name, &row.Unit,
			&row.Quantity, &row.Value, &row.VariantType); err != nil {
			return nil, fmt.Errorf("report.WarehouseStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
