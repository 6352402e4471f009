package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// QuickCreateInput crea en una sola llamada el SKU de salida, su receta y la
// orden en borrador; con AutoStart además consume la materia prima de inmediato.
type QuickCreateInput struct {
	NewProductName  string
	NewProductSKU   string
	OrderCode       string
	WarehouseID     string
	QuantityPlanned decimal.Decimal
	StartDate       time.Time
	DueDate         time.Time
	Lines           []BOMLineInput
	AutoStart       bool
	UserID          string
}

// QuickCreate flujo rápido para lanzar un producto nuevo: variante + receta +
// orden, todo dentro de una transacción — un código de orden duplicado (o
// cualquier otro fallo) no deja variantes ni recetas huérfanas. El auto-start
// corre aparte: si falla por materia prima insuficiente, lo creado persiste y
// la orden queda en draft.
func (uc *UseCase) QuickCreate(ctx context.Context, input QuickCreateInput) (*entity.ProductionOrder, error) {
	if input.NewProductName == "" || input.NewProductSKU == "" || input.OrderCode == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var order *entity.ProductionOrder
	err := uc.txRunner.RunProduction(ctx, func(
		orderRepo repository.ProductionOrderRepository,
		bomRepo repository.BOMRepository,
		variantRepo repository.VariantRepository,
		_ repository.LedgerEntryRepository,
		_ repository.StockRepository,
	) error {
		existing, err := variantRepo.GetBySKU(input.NewProductSKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateCode
		}

		variant := &entity.Variant{
			ID:        uuid.New().String(),
			SKU:       input.NewProductSKU,
			Name:      input.NewProductName,
			Type:      entity.VariantTypeProduct,
			Unit:      "unidad",
			CostPrice: decimal.Zero,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := variantRepo.Create(variant); err != nil {
			return err
		}

		bom, err := createBOM(bomRepo, variantRepo, CreateBOMInput{
			Name:            "Receta " + input.NewProductName,
			OutputVariantID: variant.ID,
			Lines:           input.Lines,
		})
		if err != nil {
			return err
		}

		order, err = createOrder(orderRepo, bomRepo, uc.warehouseRepo, CreateOrderInput{
			Code:            input.OrderCode,
			WarehouseID:     input.WarehouseID,
			OutputVariantID: variant.ID,
			BOMID:           bom.ID,
			QuantityPlanned: input.QuantityPlanned,
			StartDate:       input.StartDate,
			DueDate:         input.DueDate,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if input.AutoStart {
		if err := uc.Start(ctx, order.ID, input.UserID); err != nil {
			return order, err
		}
		order.Status = entity.ProductionStatusInProgress
	}
	return order, nil
}
