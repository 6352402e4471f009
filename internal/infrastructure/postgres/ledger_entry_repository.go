package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// LedgerEntryRepo implementación de LedgerEntryRepository sobre PostgreSQL.
// Solo inserciones y lecturas: los asientos son inmutables.
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

const ledgerEntryColumns = `id, transaction_id, warehouse_id, variant_id, type, quantity, unit_cost, total_cost, source_ref, entry_date, created_at, created_by`

// Create persiste un asiento del libro.
func (r *LedgerEntryRepo) Create(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (` + ledgerEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.TransactionID, entry.WarehouseID, entry.VariantID, entry.Type,
		entry.Quantity, entry.UnitCost, entry.TotalCost, entry.SourceRef,
		entry.Date, entry.CreatedAt, entry.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListByWarehouse asientos de una bodega, más recientes primero, con rango de fechas opcional.
func (r *LedgerEntryRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	return r.list(`warehouse_id`, warehouseID, from, to, limit, offset)
}

// ListByVariant asientos de un SKU, más recientes primero, con rango de fechas opcional.
func (r *LedgerEntryRepo) ListByVariant(variantID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	return r.list(`variant_id`, variantID, from, to, limit, offset)
}

func (r *LedgerEntryRepo) list(column, value string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE ` + column + ` = $1`
	args := []any{value}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND entry_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND entry_date <= $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY entry_date DESC, created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	return collectLedgerEntries(rows)
}

func collectLedgerEntries(rows pgx.Rows) ([]*entity.LedgerEntry, error) {
	var entries []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.TransactionID, &e.WarehouseID, &e.VariantID, &e.Type,
			&e.Quantity, &e.UnitCost, &e.TotalCost, &e.SourceRef,
			&e.Date, &e.CreatedAt, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
