package production

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/domain"
)

// PrintSheetData datos de la hoja imprimible de una orden de producción.
type PrintSheetData struct {
	Code          string
	WarehouseName string
	ProductName   string
	ProductSKU    string
	Planned       decimal.Decimal
	Finished      decimal.Decimal
	Status        string
	StartDate     time.Time
	DueDate       time.Time
	Requirements  []Requirement
	Receipts      []PrintReceipt
}

// PrintReceipt recepción parcial para la hoja imprimible.
type PrintReceipt struct {
	Date     time.Time
	Quantity decimal.Decimal
	Note     string
}

// PrintSheet arma los datos de la hoja y delega el PDF al generador.
func (uc *UseCase) PrintSheet(ctx context.Context, generator PrintSheetGenerator, orderID string) ([]byte, error) {
	details, err := uc.Details(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order := details.Order

	data := PrintSheetData{
		Code:         order.Code,
		Planned:      order.QuantityPlanned,
		Finished:     order.QuantityFinished,
		Status:       order.Status,
		StartDate:    order.StartDate,
		DueDate:      order.DueDate,
		Requirements: details.Requirements,
	}
	if warehouse, err := uc.warehouseRepo.GetByID(order.WarehouseID); err == nil && warehouse != nil {
		data.WarehouseName = warehouse.Name
	}
	if variant, err := uc.variantRepo.GetByID(order.OutputVariantID); err == nil && variant != nil {
		data.ProductName = variant.Name
		data.ProductSKU = variant.SKU
	}
	receipts, err := uc.orderRepo.ListReceives(orderID)
	if err != nil {
		return nil, err
	}
	for _, r := range receipts {
		data.Receipts = append(data.Receipts, PrintReceipt{Date: r.CreatedAt, Quantity: r.Quantity, Note: r.Note})
	}

	if generator == nil {
		return nil, domain.ErrInvalidInput
	}
	return generator.Generate(data)
}
