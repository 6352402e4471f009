package repository

import "github.com/jhoicas/textil-api/internal/domain/entity"

// BOMRepository define el puerto de persistencia para recetas (DIP).
type BOMRepository interface {
	// Create inserta la cabecera y sus líneas.
	Create(bom *entity.BOM) error
	GetByID(id string) (*entity.BOM, error)
	List(limit, offset int) ([]*entity.BOM, error)
}
