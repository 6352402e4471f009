package repository

import "github.com/jhoicas/textil-api/internal/domain/entity"

// MaterialGroupRepository define el puerto de persistencia para MaterialGroup (DIP).
type MaterialGroupRepository interface {
	Create(group *entity.MaterialGroup) error
	GetByID(id string) (*entity.MaterialGroup, error)
	List(limit, offset int) ([]*entity.MaterialGroup, error)
}
