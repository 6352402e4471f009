package repository

import "github.com/jhoicas/textil-api/internal/domain/entity"

// BrandRepository define el puerto de persistencia para Brand (DIP).
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	List(limit, offset int) ([]*entity.Brand, error)
}
