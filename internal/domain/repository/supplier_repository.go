package repository

import "github.com/jhoicas/textil-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	// GetByNormalizedName busca por nombre canónico; nil si no existe.
	GetByNormalizedName(normalized string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
}
