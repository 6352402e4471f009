package repository

import (
	"time"

	"github.com/jhoicas/textil-api/internal/domain/entity"
)

// LedgerEntryRepository define el puerto de persistencia para los asientos del
// libro de inventario. Solo inserciones: los asientos son inmutables.
type LedgerEntryRepository interface {
	Create(entry *entity.LedgerEntry) error
	ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
	ListByVariant(variantID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
}
