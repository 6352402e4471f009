package repository

import "github.com/jhoicas/textil-api/internal/domain/entity"

// ProductionOrderRepository define el puerto de persistencia para órdenes de
// producción y su historial de recepciones (DIP).
type ProductionOrderRepository interface {
	Create(order *entity.ProductionOrder) error
	GetByID(id string) (*entity.ProductionOrder, error)
	GetByCode(code string) (*entity.ProductionOrder, error)
	// GetForUpdate bloquea la fila de la orden durante una transición de estado.
	GetForUpdate(id string) (*entity.ProductionOrder, error)
	Update(order *entity.ProductionOrder) error
	Delete(id string) error
	List(warehouseID string, limit, offset int) ([]*entity.ProductionOrder, error)
	AddReceive(record *entity.ReceiveRecord) error
	ListReceives(orderID string) ([]*entity.ReceiveRecord, error)
}
