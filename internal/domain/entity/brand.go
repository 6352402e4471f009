package entity

import "time"

// Brand representa una marca de la operación textil. Identidad inmutable
// una vez referenciada por una bodega.
type Brand struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
