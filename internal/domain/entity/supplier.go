package entity

import "time"

// Supplier representa un proveedor de materia prima.
// NormalizedName es la forma canónica del nombre (trim + case fold) usada
// para evitar proveedores duplicados al crear por nombre.
type Supplier struct {
	ID             string
	Name           string
	NormalizedName string
	Phone          string
	Address        string
	CreatedAt      time.Time
}
