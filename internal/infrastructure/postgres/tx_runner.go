package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/textil-api/internal/application/ledger"
	"github.com/jhoicas/textil-api/internal/application/production"
	"github.com/jhoicas/textil-api/internal/application/purchasing"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de la aplicación.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ purchasing.TxRunner = (*TxRunner)(nil)
var _ production.TxRunner = (*TxRunner)(nil)

const (
	txMaxAttempts = 3
	txBackoffBase = 25 * time.Millisecond
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Los conflictos transitorios (serialización, interbloqueo) se reintentan con
// backoff un número acotado de veces; agotados los intentos devuelve
// domain.ErrTransientConflict.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// runWithRetry ejecuta la transacción completa; en conflicto transitorio la
// repite desde cero para que los bloqueos se adquieran de nuevo en orden.
func (r *TxRunner) runWithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < txMaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(txBackoffBase << (attempt - 1)):
			}
		}
		lastErr = fn(ctx)
		if lastErr == nil || !isTransientConflict(lastErr) {
			return lastErr
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrTransientConflict, lastErr)
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	entryRepo repository.LedgerEntryRepository,
	stockRepo repository.StockRepository,
) error) error {
	return r.runWithRetry(ctx, func(ctx context.Context) error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		entryRepo := NewLedgerEntryRepository(tx)
		stockRepo := NewStockRepository(tx)

		if err := fn(entryRepo, stockRepo); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

// RunPurchase inicia una transacción con los repos del recibo de compra completo.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	poRepo repository.PurchaseOrderRepository,
	variantRepo repository.VariantRepository,
	entryRepo repository.LedgerEntryRepository,
	stockRepo repository.StockRepository,
) error) error {
	return r.runWithRetry(ctx, func(ctx context.Context) error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		supplierRepo := NewSupplierRepository(tx)
		poRepo := NewPurchaseOrderRepository(tx)
		variantRepo := NewVariantRepository(tx)
		entryRepo := NewLedgerEntryRepository(tx)
		stockRepo := NewStockRepository(tx)

		if err := fn(supplierRepo, poRepo, variantRepo, entryRepo, stockRepo); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

// RunProduction inicia una transacción con los repos de una transición de orden de producción.
func (r *TxRunner) RunProduction(ctx context.Context, fn func(
	orderRepo repository.ProductionOrderRepository,
	bomRepo repository.BOMRepository,
	variantRepo repository.VariantRepository,
	entryRepo repository.LedgerEntryRepository,
	stockRepo repository.StockRepository,
) error) error {
	return r.runWithRetry(ctx, func(ctx context.Context) error {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		orderRepo := NewProductionOrderRepository(tx)
		bomRepo := NewBOMRepository(tx)
		variantRepo := NewVariantRepository(tx)
		entryRepo := NewLedgerEntryRepository(tx)
		stockRepo := NewStockRepository(tx)

		if err := fn(orderRepo, bomRepo, variantRepo, entryRepo, stockRepo); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}
