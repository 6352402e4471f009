package entity

import "time"

// Tipos de bodega.
const (
	WarehouseKindCentral  = "central"  // bodega central de la marca
	WarehouseKindWorkshop = "workshop" // taller de confección
)

// Warehouse representa una bodega central o un taller donde se almacena inventario.
type Warehouse struct {
	ID        string
	BrandID   string
	Name      string
	Kind      string // central | workshop
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCentral indica si la bodega es la central de su marca.
func (w *Warehouse) IsCentral() bool {
	return w.Kind == WarehouseKindCentral
}
