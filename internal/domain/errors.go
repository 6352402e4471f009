package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicateCode        = errors.New("código duplicado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInsufficientMaterial = errors.New("materia prima insuficiente")
	ErrInvalidTransition    = errors.New("transición de estado no permitida")
	ErrTransientConflict    = errors.New("conflicto transitorio, reintentar")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrUnauthorized         = errors.New("no autorizado")
)
