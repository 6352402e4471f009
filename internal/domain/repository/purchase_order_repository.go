package repository

import "github.com/jhoicas/textil-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para compras (DIP).
type PurchaseOrderRepository interface {
	// Create inserta la cabecera y sus líneas.
	Create(po *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetByCode(code string) (*entity.PurchaseOrder, error)
	List(warehouseID string, limit, offset int) ([]*entity.PurchaseOrder, error)
}
