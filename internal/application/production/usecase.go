package production

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/application/ledger"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// UseCase máquina de estados de órdenes de producción sobre una receta (BOM):
// consume materia prima al iniciar, acredita producto terminado en las
// recepciones parciales y cierra con completed o force_finished.
type UseCase struct {
	txRunner      TxRunner
	orderRepo     repository.ProductionOrderRepository
	bomRepo       repository.BOMRepository
	warehouseRepo repository.WarehouseRepository
	variantRepo   repository.VariantRepository
}

// NewUseCase construye el caso de uso de producción.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.ProductionOrderRepository,
	bomRepo repository.BOMRepository,
	warehouseRepo repository.WarehouseRepository,
	variantRepo repository.VariantRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		orderRepo:     orderRepo,
		bomRepo:       bomRepo,
		warehouseRepo: warehouseRepo,
		variantRepo:   variantRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BOM
// ──────────────────────────────────────────────────────────────────────────────

// BOMLineInput materia prima por unidad de salida.
type BOMLineInput struct {
	MaterialVariantID string
	QuantityNeeded    decimal.Decimal
}

// CreateBOMInput entrada para crear una receta.
type CreateBOMInput struct {
	Name            string
	OutputVariantID string
	Lines           []BOMLineInput
}

// CreateBOM crea la receta de un producto terminado. Todas las materias primas
// deben existir y sus cantidades ser positivas.
func (uc *UseCase) CreateBOM(ctx context.Context, input CreateBOMInput) (*entity.BOM, error) {
	return createBOM(uc.bomRepo, uc.variantRepo, input)
}

// createBOM versión sobre repos explícitos, usable dentro de una transacción.
func createBOM(
	bomRepo repository.BOMRepository,
	variantRepo repository.VariantRepository,
	input CreateBOMInput,
) (*entity.BOM, error) {
	if input.Name == "" || input.OutputVariantID == "" || len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	output, err := variantRepo.GetByID(input.OutputVariantID)
	if err != nil {
		return nil, err
	}
	if output == nil {
		return nil, domain.ErrNotFound
	}
	bom := &entity.BOM{
		ID:              uuid.New().String(),
		Name:            input.Name,
		OutputVariantID: input.OutputVariantID,
		Lines:           make([]entity.BOMLine, 0, len(input.Lines)),
		CreatedAt:       time.Now(),
	}
	for _, line := range input.Lines {
		if line.MaterialVariantID == "" || !line.QuantityNeeded.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		material, err := variantRepo.GetByID(line.MaterialVariantID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			return nil, domain.ErrNotFound
		}
		bom.Lines = append(bom.Lines, entity.BOMLine{
			MaterialVariantID: line.MaterialVariantID,
			QuantityNeeded:    line.QuantityNeeded,
		})
	}
	if err := bomRepo.Create(bom); err != nil {
		return nil, err
	}
	return bom, nil
}

// ListBOMs lista recetas.
func (uc *UseCase) ListBOMs(ctx context.Context, limit, offset int) ([]*entity.BOM, error) {
	return uc.bomRepo.List(limit, offset)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden de producción: máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

// CreateOrderInput entrada para crear una orden en borrador.
type CreateOrderInput struct {
	Code            string
	WarehouseID     string
	OutputVariantID string
	BOMID           string
	QuantityPlanned decimal.Decimal
	StartDate       time.Time
	DueDate         time.Time
}

// Create crea una orden en estado draft. Código único, cantidad planificada
// positiva; no toca el libro de inventario.
func (uc *UseCase) Create(ctx context.Context, input CreateOrderInput) (*entity.ProductionOrder, error) {
	return createOrder(uc.orderRepo, uc.bomRepo, uc.warehouseRepo, input)
}

// createOrder versión sobre repos explícitos, usable dentro de una transacción.
func createOrder(
	orderRepo repository.ProductionOrderRepository,
	bomRepo repository.BOMRepository,
	warehouseRepo repository.WarehouseRepository,
	input CreateOrderInput,
) (*entity.ProductionOrder, error) {
	if input.Code == "" || input.WarehouseID == "" || input.OutputVariantID == "" || input.BOMID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.QuantityPlanned.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	bom, err := bomRepo.GetByID(input.BOMID)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	if existing, err := orderRepo.GetByCode(input.Code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicateCode
	}

	now := time.Now()
	order := &entity.ProductionOrder{
		ID:               uuid.New().String(),
		Code:             input.Code,
		WarehouseID:      input.WarehouseID,
		OutputVariantID:  input.OutputVariantID,
		BOMID:            input.BOMID,
		QuantityPlanned:  input.QuantityPlanned,
		QuantityFinished: decimal.Zero,
		MaterialCost:     decimal.Zero,
		Status:           entity.ProductionStatusDraft,
		StartDate:        input.StartDate,
		DueDate:          input.DueDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Start consume la materia prima de la receta y pasa la orden a in_progress.
// Requiere estado draft. Si alguna materia prima no alcanza en la bodega de la
// orden, falla con ErrInsufficientMaterial y la orden queda en draft sin
// asientos: el chequeo y el consumo son atómicos.
func (uc *UseCase) Start(ctx context.Context, orderID, userID string) error {
	now := time.Now()
	return uc.txRunner.RunProduction(ctx, func(
		orderRepo repository.ProductionOrderRepository,
		bomRepo repository.BOMRepository,
		variantRepo repository.VariantRepository,
		entryRepo repository.LedgerEntryRepository,
		stockRepo repository.StockRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.ProductionStatusDraft {
			return domain.ErrInvalidTransition
		}
		bom, err := bomRepo.GetByID(order.BOMID)
		if err != nil {
			return err
		}
		if bom == nil || len(bom.Lines) == 0 {
			return domain.ErrNotFound
		}

		lines := make([]ledger.Line, 0, len(bom.Lines))
		for _, bl := range bom.Lines {
			required := bl.QuantityNeeded.Mul(order.QuantityPlanned)
			lines = append(lines, ledger.Line{
				WarehouseID: order.WarehouseID,
				VariantID:   bl.MaterialVariantID,
				Quantity:    required.Neg(),
				Type:        entity.EntryTypeProductionOut,
			})
		}
		ledger.SortLines(lines)

		applied, err := ledger.ApplyLines(entryRepo, stockRepo, order.ID, userID, order.ID, now, lines)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return domain.ErrInsufficientMaterial
			}
			return err
		}

		// Costo total de materia prima consumida, al promedio vigente
		materialCost := decimal.Zero
		for _, a := range applied {
			materialCost = materialCost.Add(a.Quantity.Neg().Mul(a.UnitCost))
		}

		order.MaterialCost = materialCost
		order.Status = entity.ProductionStatusInProgress
		order.UpdatedAt = now
		return orderRepo.Update(order)
	})
}

// Receive registra una recepción parcial de producto terminado. Requiere
// in_progress; no cambia el estado. Acredita el SKU de salida al costo
// unitario asignado (costo de materia prima / cantidad planificada). El exceso
// sobre lo planificado se admite y queda registrado.
func (uc *UseCase) Receive(ctx context.Context, orderID, userID string, qty decimal.Decimal, note string) error {
	if !qty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.RunProduction(ctx, func(
		orderRepo repository.ProductionOrderRepository,
		bomRepo repository.BOMRepository,
		variantRepo repository.VariantRepository,
		entryRepo repository.LedgerEntryRepository,
		stockRepo repository.StockRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.ProductionStatusInProgress {
			return domain.ErrInvalidTransition
		}

		if _, err := ledger.ApplyLines(entryRepo, stockRepo, order.ID, userID, order.ID, now, []ledger.Line{{
			WarehouseID: order.WarehouseID,
			VariantID:   order.OutputVariantID,
			Quantity:    qty,
			UnitCost:    order.AllocatedUnitCost(),
			Type:        entity.EntryTypeProductionIn,
		}}); err != nil {
			return err
		}

		if err := orderRepo.AddReceive(&entity.ReceiveRecord{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Quantity:  qty,
			Note:      note,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		order.QuantityFinished = order.QuantityFinished.Add(qty)
		order.UpdatedAt = now
		return orderRepo.Update(order)
	})
}

// Finish cierra la orden: in_progress → completed. No publica asientos: las
// entradas de producto terminado las hicieron las recepciones. Cerrar sin
// recepciones es válido y no toca el libro.
func (uc *UseCase) Finish(ctx context.Context, orderID string) error {
	return uc.transition(ctx, orderID, entity.ProductionStatusCompleted)
}

// ForceFinish termina la orden sin chequear cantidades pendientes:
// in_progress → force_finished. Sin asientos adicionales.
func (uc *UseCase) ForceFinish(ctx context.Context, orderID string) error {
	return uc.transition(ctx, orderID, entity.ProductionStatusForceFinished)
}

// transition cierre de orden bajo bloqueo de fila; solo desde in_progress.
func (uc *UseCase) transition(ctx context.Context, orderID, target string) error {
	now := time.Now()
	return uc.txRunner.RunProduction(ctx, func(
		orderRepo repository.ProductionOrderRepository,
		_ repository.BOMRepository,
		_ repository.VariantRepository,
		_ repository.LedgerEntryRepository,
		_ repository.StockRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.ProductionStatusInProgress {
			return domain.ErrInvalidTransition
		}
		order.Status = target
		order.UpdatedAt = now
		return orderRepo.Update(order)
	})
}

// UpdateOrderInput campos editables de una orden en borrador.
type UpdateOrderInput struct {
	QuantityPlanned *decimal.Decimal
	StartDate       *time.Time
	DueDate         *time.Time
}

// Update modifica una orden; solo permitido en draft. Mutar una orden que ya
// consumió materia prima corrompería la traza del libro.
func (uc *UseCase) Update(ctx context.Context, orderID string, input UpdateOrderInput) error {
	now := time.Now()
	return uc.txRunner.RunProduction(ctx, func(
		orderRepo repository.ProductionOrderRepository,
		_ repository.BOMRepository,
		_ repository.VariantRepository,
		_ repository.LedgerEntryRepository,
		_ repository.StockRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.ProductionStatusDraft {
			return domain.ErrInvalidTransition
		}
		if input.QuantityPlanned != nil {
			if !input.QuantityPlanned.GreaterThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			order.QuantityPlanned = *input.QuantityPlanned
		}
		if input.StartDate != nil {
			order.StartDate = *input.StartDate
		}
		if input.DueDate != nil {
			order.DueDate = *input.DueDate
		}
		order.UpdatedAt = now
		return orderRepo.Update(order)
	})
}

// Delete elimina una orden; solo permitido en draft.
func (uc *UseCase) Delete(ctx context.Context, orderID string) error {
	return uc.txRunner.RunProduction(ctx, func(
		orderRepo repository.ProductionOrderRepository,
		_ repository.BOMRepository,
		_ repository.VariantRepository,
		_ repository.LedgerEntryRepository,
		_ repository.StockRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.ProductionStatusDraft {
			return domain.ErrInvalidTransition
		}
		return orderRepo.Delete(order.ID)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

// List lista órdenes, opcionalmente por bodega.
func (uc *UseCase) List(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.ProductionOrder, error) {
	return uc.orderRepo.List(warehouseID, limit, offset)
}

// OrderDetails orden con su receta expandida a cantidades totales requeridas.
type OrderDetails struct {
	Order        *entity.ProductionOrder
	BOM          *entity.BOM
	Requirements []Requirement
}

// Requirement materia prima requerida por la orden completa.
type Requirement struct {
	MaterialVariantID string
	SKU               string
	Name              string
	QuantityPerUnit   decimal.Decimal
	TotalRequired     decimal.Decimal
}

// Details devuelve la orden con los requerimientos totales de su receta.
func (uc *UseCase) Details(ctx context.Context, orderID string) (*OrderDetails, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	bom, err := uc.bomRepo.GetByID(order.BOMID)
	if err != nil {
		return nil, err
	}
	details := &OrderDetails{Order: order, BOM: bom}
	if bom != nil {
		for _, bl := range bom.Lines {
			req := Requirement{
				MaterialVariantID: bl.MaterialVariantID,
				QuantityPerUnit:   bl.QuantityNeeded,
				TotalRequired:     bl.QuantityNeeded.Mul(order.QuantityPlanned),
			}
			if variant, err := uc.variantRepo.GetByID(bl.MaterialVariantID); err == nil && variant != nil {
				req.SKU = variant.SKU
				req.Name = variant.Name
			}
			details.Requirements = append(details.Requirements, req)
		}
	}
	return details, nil
}

// History devuelve el historial de recepciones de la orden en orden de llegada.
func (uc *UseCase) History(ctx context.Context, orderID string) ([]*entity.ReceiveRecord, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.orderRepo.ListReceives(orderID)
}
