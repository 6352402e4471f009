package entity

import "time"

// Estados de un borrador de diseño: flujo de aprobación sin efectos sobre
// el libro de inventario. Las transiciones son libres entre los tres estados.
const (
	DraftStatusPending  = "pending"
	DraftStatusApproved = "approved"
	DraftStatusRejected = "rejected"
)

// Clasificación del plazo de revisión de un borrador. Derivada, nunca almacenada.
const (
	DraftDeadlineOverdue  = "overdue"  // plazo vencido
	DraftDeadlineUrgent   = "urgent"   // quedan menos de 24h
	DraftDeadlineOK       = "ok"       // quedan 24h o más
	DraftDeadlineComplete = "complete" // estado != pending, plazo no aplica
)

// ReviewWindow plazo fijo de revisión de un borrador desde su creación.
const ReviewWindow = 48 * time.Hour

// Draft representa un diseño propuesto pendiente de aprobación.
// Las URLs de imagen son opacas: se almacenan y devuelven sin interpretación.
type Draft struct {
	ID        string
	Code      string
	Name      string
	Note      string
	ImageURLs []string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Deadline fecha límite de revisión: creación + 48 horas.
func (d *Draft) Deadline() time.Time {
	return d.CreatedAt.Add(ReviewWindow)
}

// ClassifyDeadline clasifica el plazo restante respecto a now. Se recalcula en
// cada lectura; un borrador ya aprobado o rechazado reporta "complete".
func (d *Draft) ClassifyDeadline(now time.Time) string {
	if d.Status != DraftStatusPending {
		return DraftDeadlineComplete
	}
	remaining := d.Deadline().Sub(now)
	switch {
	case remaining < 0:
		return DraftDeadlineOverdue
	case remaining < 24*time.Hour:
		return DraftDeadlineUrgent
	default:
		return DraftDeadlineOK
	}
}
