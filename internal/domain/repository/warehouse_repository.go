package repository

import "github.com/jhoicas/textil-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
	ListByBrand(brandID string) ([]*entity.Warehouse, error)
	// CentralByBrand devuelve la bodega central de la marca, o nil si no existe.
	CentralByBrand(brandID string) (*entity.Warehouse, error)
	// HasOrders indica si existen compras u órdenes de producción que referencien la bodega.
	HasOrders(id string) (bool, error)
	Delete(id string) error
}
