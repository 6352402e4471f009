package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/application/ledger"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// UseCase convierte recibos de compra en créditos del libro de inventario,
// recalculando el costo promedio de cada SKU recibido.
type UseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	poRepo        repository.PurchaseOrderRepository
	supplierRepo  repository.SupplierRepository
}

// NewUseCase construye el caso de uso de compras.
func NewUseCase(
	txRunner TxRunner,
	warehouseRepo repository.WarehouseRepository,
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		warehouseRepo: warehouseRepo,
		poRepo:        poRepo,
		supplierRepo:  supplierRepo,
	}
}

// ReceiveLine línea de un recibo de compra.
type ReceiveLine struct {
	VariantID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// ReceiveInput entrada para registrar un recibo de compra. SupplierID o
// SupplierName: con nombre, el proveedor se busca por forma normalizada y se
// crea una sola vez si no existe.
type ReceiveInput struct {
	WarehouseID  string
	SupplierID   string
	SupplierName string
	Code         string
	OrderDate    time.Time
	Lines        []ReceiveLine
	UserID       string
}

// Receive valida y registra la compra: un asiento positivo del libro por línea
// (costo unitario = precio de compra), cabecera con total = Σ cantidad×precio.
// Rechaza sin efectos con código duplicado o líneas inválidas. Todo-o-nada.
func (uc *UseCase) Receive(ctx context.Context, input ReceiveInput) (*entity.PurchaseOrder, error) {
	if input.Code == "" || input.WarehouseID == "" || len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.SupplierID == "" && input.SupplierName == "" {
		return nil, domain.ErrInvalidInput
	}
	total := decimal.Zero
	for _, line := range input.Lines {
		if line.VariantID == "" ||
			!line.Quantity.GreaterThan(decimal.Zero) ||
			!line.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		total = total.Add(line.Quantity.Mul(line.UnitPrice))
	}

	warehouse, err := uc.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	// Verificación previa de unicidad; el índice único respalda contra carreras.
	if existing, err := uc.poRepo.GetByCode(input.Code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicateCode
	}

	now := time.Now()
	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}

	po := &entity.PurchaseOrder{
		ID:          uuid.New().String(),
		Code:        input.Code,
		WarehouseID: input.WarehouseID,
		OrderDate:   orderDate,
		TotalAmount: total,
		Status:      entity.PurchaseOrderStatusCompleted,
		CreatedAt:   now,
		CreatedBy:   input.UserID,
	}

	err = uc.txRunner.RunPurchase(ctx, func(
		supplierRepo repository.SupplierRepository,
		poRepo repository.PurchaseOrderRepository,
		variantRepo repository.VariantRepository,
		entryRepo repository.LedgerEntryRepository,
		stockRepo repository.StockRepository,
	) error {
		supplierID := input.SupplierID
		if supplierID == "" {
			supplier, err := findOrCreateSupplier(supplierRepo, input.SupplierName, now)
			if err != nil {
				return err
			}
			supplierID = supplier.ID
		} else {
			supplier, err := supplierRepo.GetByID(supplierID)
			if err != nil {
				return err
			}
			if supplier == nil {
				return domain.ErrNotFound
			}
		}
		po.SupplierID = supplierID

		lines := make([]ledger.Line, 0, len(input.Lines))
		po.Items = make([]entity.PurchaseOrderItem, 0, len(input.Lines))
		for _, line := range input.Lines {
			variant, err := variantRepo.GetByID(line.VariantID)
			if err != nil {
				return err
			}
			if variant == nil {
				return domain.ErrNotFound
			}
			po.Items = append(po.Items, entity.PurchaseOrderItem{
				ID:        uuid.New().String(),
				VariantID: line.VariantID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Subtotal:  line.Quantity.Mul(line.UnitPrice),
			})
			lines = append(lines, ledger.Line{
				WarehouseID: input.WarehouseID,
				VariantID:   line.VariantID,
				Quantity:    line.Quantity,
				UnitCost:    line.UnitPrice,
				Type:        entity.EntryTypePurchaseIn,
			})
		}

		if err := poRepo.Create(po); err != nil {
			return err
		}

		ledger.SortLines(lines)
		applied, err := ledger.ApplyLines(entryRepo, stockRepo, po.ID, input.UserID, po.ID, now, lines)
		if err != nil {
			return err
		}
		// Refleja el promedio recalculado como costo de referencia del SKU
		for _, a := range applied {
			if err := variantRepo.UpdateCost(a.VariantID, a.NewAvg); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return po, nil
}

// GetByID devuelve la compra con sus líneas.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	po, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return po, nil
}

// List lista compras, opcionalmente filtradas por bodega.
func (uc *UseCase) List(ctx context.Context, warehouseID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	return uc.poRepo.List(warehouseID, limit, offset)
}

// FindOrCreateSupplier expone la creación idempotente de proveedores por
// nombre normalizado (POST /suppliers).
func (uc *UseCase) FindOrCreateSupplier(ctx context.Context, name, phone, address string) (*entity.Supplier, error) {
	normalized := NormalizeSupplierName(name)
	if normalized == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.supplierRepo.GetByNormalizedName(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	supplier := &entity.Supplier{
		ID:             uuid.New().String(),
		Name:           NormalizeDisplayName(name),
		NormalizedName: normalized,
		Phone:          phone,
		Address:        address,
		CreatedAt:      time.Now(),
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// ListSuppliers lista proveedores.
func (uc *UseCase) ListSuppliers(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List(limit, offset)
}
