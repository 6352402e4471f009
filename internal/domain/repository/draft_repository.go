package repository

import "github.com/jhoicas/textil-api/internal/domain/entity"

// DraftRepository define el puerto de persistencia para borradores de diseño (DIP).
type DraftRepository interface {
	Create(draft *entity.Draft) error
	GetByID(id string) (*entity.Draft, error)
	// Update reemplaza cabecera e imágenes completas.
	Update(draft *entity.Draft) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Draft, error)
}
