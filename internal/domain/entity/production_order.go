package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de producción.
// draft → in_progress → completed, con terminal alterno force_finished
// alcanzable desde in_progress. Ningún estado terminal admite transiciones.
const (
	ProductionStatusDraft         = "draft"
	ProductionStatusInProgress    = "in_progress"
	ProductionStatusCompleted     = "completed"
	ProductionStatusForceFinished = "force_finished"
)

// ProductionOrder representa una orden de producción en un taller.
// MaterialCost acumula el costo total de materia prima consumida al iniciar;
// QuantityFinished es el acumulado de recepciones parciales.
type ProductionOrder struct {
	ID               string
	Code             string // código único, ej. OP-2025-001
	WarehouseID      string
	OutputVariantID  string
	BOMID            string
	QuantityPlanned  decimal.Decimal
	QuantityFinished decimal.Decimal
	MaterialCost     decimal.Decimal
	Status           string
	StartDate        time.Time
	DueDate          time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReceiveRecord una recepción parcial de producto terminado de la orden.
type ReceiveRecord struct {
	ID        string
	OrderID   string
	Quantity  decimal.Decimal
	Note      string
	CreatedAt time.Time
}

// IsTerminal indica si la orden ya no admite transiciones.
func (o *ProductionOrder) IsTerminal() bool {
	return o.Status == ProductionStatusCompleted || o.Status == ProductionStatusForceFinished
}

// AllocatedUnitCost costo unitario de producción asignado: costo total de
// materia prima consumida dividido por la cantidad planificada.
func (o *ProductionOrder) AllocatedUnitCost() decimal.Decimal {
	if o.QuantityPlanned.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return o.MaterialCost.Div(o.QuantityPlanned)
}
