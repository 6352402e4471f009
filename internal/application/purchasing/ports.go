package purchasing

import (
	"context"

	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// TxRunner ejecuta el recibo de compra completo (proveedor, cabecera, líneas y
// asientos del libro) dentro de una sola transacción de BD.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		supplierRepo repository.SupplierRepository,
		poRepo repository.PurchaseOrderRepository,
		variantRepo repository.VariantRepository,
		entryRepo repository.LedgerEntryRepository,
		stockRepo repository.StockRepository,
	) error) error
}
