package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textil-api/internal/application/dto"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
)

type fakeBrandRepo struct{ brands map[string]*entity.Brand }

func (r *fakeBrandRepo) Create(b *entity.Brand) error             { r.brands[b.ID] = b; return nil }
func (r *fakeBrandRepo) GetByID(id string) (*entity.Brand, error) { return r.brands[id], nil }
func (r *fakeBrandRepo) List(limit, offset int) ([]*entity.Brand, error) {
	var out []*entity.Brand
	for _, b := range r.brands {
		out = append(out, b)
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
	hasOrders  map[string]bool
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{
		warehouses: make(map[string]*entity.Warehouse),
		hasOrders:  make(map[string]bool),
	}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		out = append(out, w)
	}
	return out, nil
}
func (r *fakeWarehouseRepo) ListByBrand(brandID string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.BrandID == brandID {
			out = append(out, w)
		}
	}
	return out, nil
}
func (r *fakeWarehouseRepo) CentralByBrand(brandID string) (*entity.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.BrandID == brandID && w.IsCentral() {
			return w, nil
		}
	}
	return nil, nil
}
func (r *fakeWarehouseRepo) HasOrders(id string) (bool, error) { return r.hasOrders[id], nil }
func (r *fakeWarehouseRepo) Delete(id string) error            { delete(r.warehouses, id); return nil }

type fakeStockRepo struct{ totals map[string]decimal.Decimal }

func (r *fakeStockRepo) Get(warehouseID, variantID string) (*entity.Stock, error) {
	return &entity.Stock{WarehouseID: warehouseID, VariantID: variantID,
		Quantity: decimal.Zero, AvgCost: decimal.Zero}, nil
}
func (r *fakeStockRepo) GetForUpdate(warehouseID, variantID string) (*entity.Stock, error) {
	return r.Get(warehouseID, variantID)
}
func (r *fakeStockRepo) Upsert(*entity.Stock) error { return nil }
func (r *fakeStockRepo) TotalByWarehouse(warehouseID string) (decimal.Decimal, error) {
	if t, ok := r.totals[warehouseID]; ok {
		return t, nil
	}
	return decimal.Zero, nil
}

func newWarehouseFixture(enforce bool) (*WarehouseUseCase, *fakeWarehouseRepo, *fakeStockRepo) {
	brands := &fakeBrandRepo{brands: map[string]*entity.Brand{
		"marca-1": {ID: "marca-1", Name: "Alma Textil"},
	}}
	repo := newFakeWarehouseRepo()
	stocks := &fakeStockRepo{totals: make(map[string]decimal.Decimal)}
	return NewWarehouseUseCase(repo, brands, stocks, enforce), repo, stocks
}

// Con la regla activa una marca admite una sola bodega central.
func TestWarehouseCreate_SegundaCentralRechazada(t *testing.T) {
	uc, _, _ := newWarehouseFixture(true)

	_, err := uc.Create(dto.CreateWarehouseRequest{
		BrandID: "marca-1", Name: "Central Norte", Kind: entity.WarehouseKindCentral,
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateWarehouseRequest{
		BrandID: "marca-1", Name: "Central Sur", Kind: entity.WarehouseKindCentral,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Con la regla desactivada la segunda central se crea con un aviso.
func TestWarehouseCreate_SegundaCentralConAviso(t *testing.T) {
	uc, repo, _ := newWarehouseFixture(false)

	first, err := uc.Create(dto.CreateWarehouseRequest{
		BrandID: "marca-1", Name: "Central Norte", Kind: entity.WarehouseKindCentral,
	})
	require.NoError(t, err)
	assert.Empty(t, first.Warning)

	second, err := uc.Create(dto.CreateWarehouseRequest{
		BrandID: "marca-1", Name: "Central Sur", Kind: entity.WarehouseKindCentral,
	})
	require.NoError(t, err)
	assert.Contains(t, second.Warning, "Central Norte")
	assert.Len(t, repo.warehouses, 2)
}

// Los talleres no están limitados por marca.
func TestWarehouseCreate_VariosTalleres(t *testing.T) {
	uc, _, _ := newWarehouseFixture(true)
	for _, name := range []string{"Taller A", "Taller B"} {
		_, err := uc.Create(dto.CreateWarehouseRequest{
			BrandID: "marca-1", Name: name, Kind: entity.WarehouseKindWorkshop,
		})
		require.NoError(t, err)
	}
}

func TestWarehouseCreate_Validaciones(t *testing.T) {
	uc, _, _ := newWarehouseFixture(true)

	_, err := uc.Create(dto.CreateWarehouseRequest{
		BrandID: "marca-1", Name: "  ", Kind: entity.WarehouseKindCentral,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateWarehouseRequest{
		BrandID: "marca-1", Name: "Bodega", Kind: "sucursal",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	_, err = uc.Create(dto.CreateWarehouseRequest{
		BrandID: "marca-x", Name: "Bodega", Kind: entity.WarehouseKindWorkshop,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "marca inexistente")
}

// Borrar exige bodega vacía y sin órdenes.
func TestWarehouseDelete_ConSaldoOConOrdenes(t *testing.T) {
	uc, repo, stocks := newWarehouseFixture(true)
	w, err := uc.Create(dto.CreateWarehouseRequest{
		BrandID: "marca-1", Name: "Taller", Kind: entity.WarehouseKindWorkshop,
	})
	require.NoError(t, err)

	stocks.totals[w.ID] = decimal.NewFromInt(5)
	assert.ErrorIs(t, uc.Delete(w.ID), domain.ErrConflict, "con existencias no se borra")

	stocks.totals[w.ID] = decimal.Zero
	repo.hasOrders[w.ID] = true
	assert.ErrorIs(t, uc.Delete(w.ID), domain.ErrConflict, "con órdenes no se borra")

	repo.hasOrders[w.ID] = false
	require.NoError(t, uc.Delete(w.ID))
	assert.ErrorIs(t, uc.Delete(w.ID), domain.ErrNotFound)
}
