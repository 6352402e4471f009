package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/costing"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// Line una línea de asiento a aplicar sobre el libro.
// Quantity con signo: positivo entrada, negativo salida. UnitCost solo se lee
// en entradas; las salidas se valoran al promedio vigente del par (bodega, SKU).
type Line struct {
	WarehouseID string
	VariantID   string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	Type        string
}

// Applied resultado de aplicar una línea: costo unitario efectivo y el nuevo
// estado del saldo. Los callers lo usan para propagar costos (traslados,
// consumo de producción) sin releer la fila.
type Applied struct {
	WarehouseID string
	VariantID   string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	NewQty      decimal.Decimal
	NewAvg      decimal.Decimal
}

// ApplyLines aplica líneas sobre el libro dentro de la transacción del caller.
// Por cada línea bloquea la fila de stock (SELECT FOR UPDATE), verifica que el
// saldo resultante no quede negativo, actualiza cantidad y costo promedio, y
// registra el asiento. Si cualquier línea viola el invariante devuelve
// domain.ErrInsufficientStock y el caller debe hacer rollback: ninguna línea
// queda aplicada.
//
// Las entradas recalculan el promedio ponderado; las salidas no lo alteran.
func ApplyLines(
	entryRepo repository.LedgerEntryRepository,
	stockRepo repository.StockRepository,
	txID, createdBy, sourceRef string,
	date time.Time,
	lines []Line,
) ([]Applied, error) {
	applied := make([]Applied, 0, len(lines))
	for _, line := range lines {
		if line.Quantity.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		stock, err := stockRepo.GetForUpdate(line.WarehouseID, line.VariantID)
		if err != nil {
			return nil, err
		}

		newQty := stock.Quantity.Add(line.Quantity)
		// El saldo solo puede quedar negativo si el delta es negativo; las
		// entradas siempre se admiten.
		if line.Quantity.IsNegative() && newQty.IsNegative() {
			return nil, domain.ErrInsufficientStock
		}

		unitCost := line.UnitCost
		newAvg := stock.AvgCost
		if line.Quantity.IsPositive() {
			newAvg = costing.AverageCost(stock.Quantity, stock.AvgCost, line.Quantity, unitCost)
		} else {
			// Salida valorada al promedio vigente
			unitCost = stock.AvgCost
		}

		stock.Quantity = newQty
		stock.AvgCost = newAvg
		stock.UpdatedAt = date
		if err := stockRepo.Upsert(stock); err != nil {
			return nil, err
		}

		entry := &entity.LedgerEntry{
			ID:            uuid.New().String(),
			TransactionID: txID,
			WarehouseID:   line.WarehouseID,
			VariantID:     line.VariantID,
			Type:          line.Type,
			Quantity:      line.Quantity,
			UnitCost:      unitCost,
			TotalCost:     line.Quantity.Mul(unitCost),
			SourceRef:     sourceRef,
			Date:          date,
			CreatedAt:     date,
			CreatedBy:     createdBy,
		}
		if err := entryRepo.Create(entry); err != nil {
			return nil, err
		}

		applied = append(applied, Applied{
			WarehouseID: line.WarehouseID,
			VariantID:   line.VariantID,
			Quantity:    line.Quantity,
			UnitCost:    unitCost,
			NewQty:      newQty,
			NewAvg:      newAvg,
		})
	}
	return applied, nil
}
