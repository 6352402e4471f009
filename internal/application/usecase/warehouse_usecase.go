package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/textil-api/internal/application/dto"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso para bodegas y talleres.
// Con EnforceSingleCentral activo una marca admite una sola bodega central;
// desactivado la duplicidad solo genera un aviso en la respuesta.
type WarehouseUseCase struct {
	repo                 repository.WarehouseRepository
	brandRepo            repository.BrandRepository
	stockRepo            repository.StockRepository
	enforceSingleCentral bool
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	repo repository.WarehouseRepository,
	brandRepo repository.BrandRepository,
	stockRepo repository.StockRepository,
	enforceSingleCentral bool,
) *WarehouseUseCase {
	return &WarehouseUseCase{
		repo:                 repo,
		brandRepo:            brandRepo,
		stockRepo:            stockRepo,
		enforceSingleCentral: enforceSingleCentral,
	}
}

// Create crea una bodega central o un taller para una marca existente.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind != entity.WarehouseKindCentral && in.Kind != entity.WarehouseKindWorkshop {
		return nil, domain.ErrInvalidInput
	}
	brand, err := uc.brandRepo.GetByID(in.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}

	warning := ""
	if in.Kind == entity.WarehouseKindCentral {
		existing, err := uc.repo.CentralByBrand(in.BrandID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if uc.enforceSingleCentral {
				return nil, domain.ErrConflict
			}
			warning = "la marca ya tiene una bodega central: " + existing.Name
		}
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		BrandID:   in.BrandID,
		Name:      name,
		Kind:      in.Kind,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	resp := toWarehouseResponse(warehouse, brand.Name)
	resp.Warning = warning
	return resp, nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	brandName := ""
	if brand, err := uc.brandRepo.GetByID(warehouse.BrandID); err == nil && brand != nil {
		brandName = brand.Name
	}
	return toWarehouseResponse(warehouse, brandName), nil
}

// Update modifica nombre y dirección. La marca y el tipo son inmutables.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		warehouse.Name = name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse, ""), nil
}

// List lista bodegas, opcionalmente filtradas por marca.
func (uc *WarehouseUseCase) List(brandID string, page dto.PageRequest) (*dto.WarehouseListResponse, error) {
	page.DefaultPage()
	var (
		warehouses []*entity.Warehouse
		err        error
	)
	if brandID != "" {
		warehouses, err = uc.repo.ListByBrand(brandID)
	} else {
		warehouses, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		items = append(items, *toWarehouseResponse(w, ""))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// Delete elimina una bodega solo si no tiene existencias ni órdenes asociadas.
func (uc *WarehouseUseCase) Delete(id string) error {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	total, err := uc.stockRepo.TotalByWarehouse(id)
	if err != nil {
		return err
	}
	if !total.IsZero() {
		return domain.ErrConflict
	}
	hasOrders, err := uc.repo.HasOrders(id)
	if err != nil {
		return err
	}
	if hasOrders {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toWarehouseResponse(w *entity.Warehouse, brandName string) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		BrandID:   w.BrandID,
		BrandName: brandName,
		Name:      w.Name,
		Kind:      w.Kind,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
