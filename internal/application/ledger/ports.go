package ledger

import (
	"context"

	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad todo-o-nada para los
// asientos del libro de inventario y reintenta conflictos transitorios de
// bloqueo un número acotado de veces.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		entryRepo repository.LedgerEntryRepository,
		stockRepo repository.StockRepository,
	) error) error
}
