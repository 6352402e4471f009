package production

import (
	"context"

	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// TxRunner ejecuta una transición de orden de producción (y sus asientos del
// libro) dentro de una sola transacción de BD. La fila de la orden se bloquea
// durante toda la transición para impedir dos start concurrentes.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(
		orderRepo repository.ProductionOrderRepository,
		bomRepo repository.BOMRepository,
		variantRepo repository.VariantRepository,
		entryRepo repository.LedgerEntryRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// PrintSheetGenerator genera la hoja imprimible de una orden (PDF).
type PrintSheetGenerator interface {
	Generate(data PrintSheetData) ([]byte, error)
}
