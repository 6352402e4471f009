package dto

import "time"

// CreateDraftRequest entrada para crear un borrador de diseño.
type CreateDraftRequest struct {
	Code      string   `json:"code" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Note      string   `json:"note"`
	ImageURLs []string `json:"image_urls"`
}

// UpdateDraftRequest actualización completa (las imágenes se reemplazan).
type UpdateDraftRequest struct {
	Code      string   `json:"code" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Note      string   `json:"note"`
	Status    string   `json:"status" validate:"required,oneof=pending approved rejected"`
	ImageURLs []string `json:"image_urls"`
}

// UpdateDraftStatusRequest cambio de estado aislado de un borrador.
type UpdateDraftStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// DraftResponse salida de un borrador. Deadline y DeadlineState se derivan en
// cada lectura, nunca se almacenan.
type DraftResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Note          string    `json:"note"`
	Status        string    `json:"status"`
	ImageURLs     []string  `json:"images"`
	CreatedAt     time.Time `json:"created_at"`
	Deadline      time.Time `json:"deadline"`
	DeadlineState string    `json:"deadline_state"`
}
