// Package analytics arma los tableros de lectura de bodegas centrales y
// talleres a partir de proyecciones agregadas del libro de inventario.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/textil-api/internal/application/dto"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

const recentPurchasesLimit = 10

// DashboardUseCase tableros de solo lectura. Sin invariantes propios:
// los datos reflejan el libro al momento de la consulta.
type DashboardUseCase struct {
	warehouseRepo  repository.WarehouseRepository
	brandRepo      repository.BrandRepository
	reportRepo     repository.ReportRepository
	productionRepo repository.ProductionOrderRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	warehouseRepo repository.WarehouseRepository,
	brandRepo repository.BrandRepository,
	reportRepo repository.ReportRepository,
	productionRepo repository.ProductionOrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		warehouseRepo:  warehouseRepo,
		brandRepo:      brandRepo,
		reportRepo:     reportRepo,
		productionRepo: productionRepo,
	}
}

// CentralDashboard tablero de una bodega central: talleres de la marca,
// inventario agregado, compras recientes y producción activa.
func (uc *DashboardUseCase) CentralDashboard(ctx context.Context, warehouseID string) (*dto.CentralDashboardResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if !warehouse.IsCentral() {
		return nil, domain.ErrInvalidInput
	}
	brand, err := uc.brandRepo.GetByID(warehouse.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}

	siblings, err := uc.warehouseRepo.ListByBrand(warehouse.BrandID)
	if err != nil {
		return nil, err
	}
	workshops := make([]dto.WorkshopSummaryDTO, 0, len(siblings))
	for _, w := range siblings {
		if w.Kind != entity.WarehouseKindWorkshop {
			continue
		}
		workshops = append(workshops, dto.WorkshopSummaryDTO{
			ID:      w.ID,
			Name:    w.Name,
			Address: w.Address,
		})
	}

	totals, err := uc.reportRepo.BrandStockTotals(ctx, warehouse.BrandID)
	if err != nil {
		return nil, err
	}
	inventory := make([]dto.StockTotalDTO, 0, len(totals))
	for _, t := range totals {
		inventory = append(inventory, dto.StockTotalDTO{
			SKU:        t.SKU,
			Name:       t.Name,
			Unit:       t.Unit,
			TotalQty:   t.TotalQty,
			TotalValue: t.TotalValue,
		})
	}

	recents, err := uc.reportRepo.RecentPurchases(ctx, warehouseID, recentPurchasesLimit)
	if err != nil {
		return nil, err
	}
	purchases := make([]dto.RecentPurchaseDTO, 0, len(recents))
	for _, p := range recents {
		purchases = append(purchases, dto.RecentPurchaseDTO{
			Code:     p.Code,
			Supplier: p.SupplierName,
			Date:     p.OrderDate,
			Amount:   p.TotalAmount,
			Status:   p.Status,
		})
	}

	actives, err := uc.reportRepo.ActiveProduction(ctx, warehouse.BrandID)
	if err != nil {
		return nil, err
	}
	production := make([]dto.ActiveProductionDTO, 0, len(actives))
	for _, a := range actives {
		production = append(production, dto.ActiveProductionDTO{
			Code:     a.Code,
			Workshop: a.WorkshopName,
			Product:  a.ProductName,
			Planned:  a.Planned,
			Finished: a.Finished,
			Status:   a.Status,
			DueDate:  a.DueDate,
		})
	}

	return &dto.CentralDashboardResponse{
		Info: dto.WarehouseResponse{
			ID:        warehouse.ID,
			BrandID:   warehouse.BrandID,
			BrandName: brand.Name,
			Name:      warehouse.Name,
			Kind:      warehouse.Kind,
			Address:   warehouse.Address,
			CreatedAt: warehouse.CreatedAt,
			UpdatedAt: warehouse.UpdatedAt,
		},
		Workshops:        workshops,
		TotalInventory:   inventory,
		RecentPurchases:  purchases,
		ActiveProduction: production,
	}, nil
}

// WorkshopDetail detalle de un taller: existencias valorizadas, órdenes de
// producción y valor total de activos de la bodega.
func (uc *DashboardUseCase) WorkshopDetail(ctx context.Context, warehouseID string) (*dto.WorkshopDetailResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	stocks, err := uc.reportRepo.WarehouseStock(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	inventory := make([]dto.WorkshopStockDTO, 0, len(stocks))
	totalValue := decimal.Zero
	for _, s := range stocks {
		inventory = append(inventory, dto.WorkshopStockDTO{
			SKU:   s.SKU,
			Name:  s.Name,
			Unit:  s.Unit,
			Qty:   s.Quantity,
			Value: s.Value,
			Type:  s.VariantType,
		})
		totalValue = totalValue.Add(s.Value)
	}

	orders, err := uc.productionRepo.List(warehouseID, 100, 0)
	if err != nil {
		return nil, err
	}
	production := make([]dto.ProductionOrderResponse, 0, len(orders))
	for _, o := range orders {
		production = append(production, dto.ProductionOrderResponse{
			ID:               o.ID,
			Code:             o.Code,
			WarehouseID:      o.WarehouseID,
			OutputVariantID:  o.OutputVariantID,
			BOMID:            o.BOMID,
			QuantityPlanned:  o.QuantityPlanned,
			QuantityFinished: o.QuantityFinished,
			Status:           o.Status,
			StartDate:        o.StartDate,
			DueDate:          o.DueDate,
		})
	}

	return &dto.WorkshopDetailResponse{
		Info: dto.WarehouseResponse{
			ID:        warehouse.ID,
			BrandID:   warehouse.BrandID,
			Name:      warehouse.Name,
			Kind:      warehouse.Kind,
			Address:   warehouse.Address,
			CreatedAt: warehouse.CreatedAt,
			UpdatedAt: warehouse.UpdatedAt,
		},
		Inventory:       inventory,
		Production:      production,
		TotalAssetValue: totalValue,
	}, nil
}
