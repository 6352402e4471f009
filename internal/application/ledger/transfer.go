package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// TransferUseCase mueve existencias entre dos bodegas con asientos pareados
// (salida en origen, entrada en destino) dentro de una sola transacción.
type TransferUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewTransferUseCase construye el caso de uso de traslados.
func NewTransferUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo}
}

// TransferLine una línea del traslado.
type TransferLine struct {
	VariantID string
	Quantity  decimal.Decimal
}

// TransferInput entrada para un traslado entre bodegas.
type TransferInput struct {
	FromWarehouseID string
	ToWarehouseID   string
	Lines           []TransferLine
	UserID          string
}

// Transfer ejecuta el traslado. Cada línea debita el origen y acredita el
// destino al costo promedio del origen en el momento del traslado: el costo
// viaja con la mercancía y el promedio previo del destino no lo altera.
// Atómico entre líneas: cualquier faltante aborta el traslado completo.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) error {
	if input.FromWarehouseID == "" || input.ToWarehouseID == "" || len(input.Lines) == 0 {
		return domain.ErrInvalidInput
	}
	if input.FromWarehouseID == input.ToWarehouseID {
		return domain.ErrInvalidInput
	}
	for _, line := range input.Lines {
		if line.VariantID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}

	fromWh, err := uc.warehouseRepo.GetByID(input.FromWarehouseID)
	if err != nil {
		return err
	}
	toWh, err := uc.warehouseRepo.GetByID(input.ToWarehouseID)
	if err != nil {
		return err
	}
	if fromWh == nil || toWh == nil {
		return domain.ErrNotFound
	}

	// Asientos pareados por línea: débito en origen, crédito en destino
	lines := make([]Line, 0, 2*len(input.Lines))
	for _, line := range input.Lines {
		lines = append(lines,
			Line{
				WarehouseID: input.FromWarehouseID,
				VariantID:   line.VariantID,
				Quantity:    line.Quantity.Neg(),
				Type:        entity.EntryTypeTransferOut,
			},
			Line{
				WarehouseID: input.ToWarehouseID,
				VariantID:   line.VariantID,
				Quantity:    line.Quantity,
				Type:        entity.EntryTypeTransferIn,
			},
		)
	}
	SortLines(lines)

	now := time.Now()
	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		entryRepo repository.LedgerEntryRepository,
		stockRepo repository.StockRepository,
	) error {
		// Bloquear todas las filas en orden (bodega, SKU) antes de escribir:
		// traslados en direcciones opuestas adquieren los mismos bloqueos en
		// el mismo orden y no pueden interbloquearse. De paso se captura el
		// promedio del origen, que el débito posterior no altera.
		avgCost := make(map[string]decimal.Decimal, len(lines))
		for _, line := range lines {
			stock, err := stockRepo.GetForUpdate(line.WarehouseID, line.VariantID)
			if err != nil {
				return err
			}
			avgCost[line.WarehouseID+"\x00"+line.VariantID] = stock.AvgCost
		}

		// El costo viaja con la mercancía: la entrada al destino se valora al
		// promedio del origen en el momento del traslado
		for i := range lines {
			if lines[i].Type == entity.EntryTypeTransferIn {
				lines[i].UnitCost = avgCost[input.FromWarehouseID+"\x00"+lines[i].VariantID]
			}
		}

		_, err := ApplyLines(entryRepo, stockRepo, txID, input.UserID, txID, now, lines)
		return err
	})
}
