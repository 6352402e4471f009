package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// UseCase expone el contrato del libro de inventario: publicación atómica de
// asientos multi-línea y consulta de saldos.
type UseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockRepository
}

// NewUseCase construye el caso de uso del libro.
func NewUseCase(txRunner TxRunner, stockRepo repository.StockRepository) *UseCase {
	return &UseCase{txRunner: txRunner, stockRepo: stockRepo}
}

// PostingInput entrada para publicar una operación multi-línea.
type PostingInput struct {
	Lines     []Line
	SourceRef string
	UserID    string
	Date      time.Time
}

// Post publica todas las líneas en una sola transacción. Rechaza la operación
// completa si alguna línea dejaría un saldo negativo. Las filas se bloquean en
// orden determinista (bodega, SKU) para evitar interbloqueos entre operaciones
// concurrentes sobre los mismos pares.
func (uc *UseCase) Post(ctx context.Context, input PostingInput) error {
	if len(input.Lines) == 0 {
		return domain.ErrInvalidInput
	}
	lines := make([]Line, len(input.Lines))
	copy(lines, input.Lines)
	SortLines(lines)

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		entryRepo repository.LedgerEntryRepository,
		stockRepo repository.StockRepository,
	) error {
		_, err := ApplyLines(entryRepo, stockRepo, txID, input.UserID, input.SourceRef, date, lines)
		return err
	})
}

// Balance devuelve cantidad y costo promedio actuales del par (bodega, SKU).
func (uc *UseCase) Balance(ctx context.Context, warehouseID, variantID string) (decimal.Decimal, decimal.Decimal, error) {
	stock, err := uc.stockRepo.Get(warehouseID, variantID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return stock.Quantity, stock.AvgCost, nil
}

// SortLines ordena líneas por (bodega, SKU) para adquirir los bloqueos de fila
// siempre en el mismo orden.
func SortLines(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].WarehouseID != lines[j].WarehouseID {
			return lines[i].WarehouseID < lines[j].WarehouseID
		}
		return lines[i].VariantID < lines[j].VariantID
	})
}
