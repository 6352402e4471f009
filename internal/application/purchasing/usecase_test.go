package purchasing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textil-api/internal/application/purchasing"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica de transacción (rollback)
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type memStore struct {
	suppliers map[string]*entity.Supplier // por ID
	orders    map[string]*entity.PurchaseOrder
	variants  map[string]*entity.Variant
	stocks    map[string]*entity.Stock // "wh|variant"
	entries   []*entity.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{
		suppliers: make(map[string]*entity.Supplier),
		orders:    make(map[string]*entity.PurchaseOrder),
		variants:  make(map[string]*entity.Variant),
		stocks:    make(map[string]*entity.Stock),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.suppliers {
		c := *v
		cp.suppliers[k] = &c
	}
	for k, v := range s.orders {
		c := *v
		cp.orders[k] = &c
	}
	for k, v := range s.variants {
		c := *v
		cp.variants[k] = &c
	}
	for k, v := range s.stocks {
		c := *v
		cp.stocks[k] = &c
	}
	cp.entries = append(cp.entries, s.entries...)
	return cp
}

func (s *memStore) addVariant(id, sku string) {
	s.variants[id] = &entity.Variant{ID: id, SKU: sku, Name: sku, Type: entity.VariantTypeMaterial}
}

func key(warehouseID, variantID string) string { return warehouseID + "|" + variantID }

type memSupplierRepo struct{ s *memStore }

func (r *memSupplierRepo) Create(sp *entity.Supplier) error { r.s.suppliers[sp.ID] = sp; return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}
func (r *memSupplierRepo) GetByNormalizedName(normalized string) (*entity.Supplier, error) {
	for _, sp := range r.s.suppliers {
		if sp.NormalizedName == normalized {
			return sp, nil
		}
	}
	return nil, nil
}
func (r *memSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, sp := range r.s.suppliers {
		out = append(out, sp)
	}
	return out, nil
}

type memPORepo struct{ s *memStore }

func (r *memPORepo) Create(po *entity.PurchaseOrder) error { r.s.orders[po.ID] = po; return nil }
func (r *memPORepo) GetByID(id string) (*entity.PurchaseOrder, error) { return r.s.orders[id], nil }
func (r *memPORepo) GetByCode(code string) (*entity.PurchaseOrder, error) {
	for _, po := range r.s.orders {
		if po.Code == code {
			return po, nil
		}
	}
	return nil, nil
}
func (r *memPORepo) List(warehouseID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, po := range r.s.orders {
		if warehouseID == "" || po.WarehouseID == warehouseID {
			out = append(out, po)
		}
	}
	return out, nil
}

type memVariantRepo struct{ s *memStore }

func (r *memVariantRepo) Create(v *entity.Variant) error             { r.s.variants[v.ID] = v; return nil }
func (r *memVariantRepo) GetByID(id string) (*entity.Variant, error) { return r.s.variants[id], nil }
func (r *memVariantRepo) GetBySKU(sku string) (*entity.Variant, error) {
	for _, v := range r.s.variants {
		if v.SKU == sku {
			return v, nil
		}
	}
	return nil, nil
}
func (r *memVariantRepo) Update(v *entity.Variant) error { r.s.variants[v.ID] = v; return nil }
func (r *memVariantRepo) UpdateCost(variantID string, cost decimal.Decimal) error {
	if v, ok := r.s.variants[variantID]; ok {
		v.CostPrice = cost
	}
	return nil
}
func (r *memVariantRepo) List(variantType string, limit, offset int) ([]*entity.Variant, error) {
	var out []*entity.Variant
	for _, v := range r.s.variants {
		out = append(out, v)
	}
	return out, nil
}

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(warehouseID, variantID string) (*entity.Stock, error) {
	if st, ok := r.s.stocks[key(warehouseID, variantID)]; ok {
		c := *st
		return &c, nil
	}
	return &entity.Stock{WarehouseID: warehouseID, VariantID: variantID,
		Quantity: decimal.Zero, AvgCost: decimal.Zero}, nil
}
func (r *memStockRepo) GetForUpdate(warehouseID, variantID string) (*entity.Stock, error) {
	return r.Get(warehouseID, variantID)
}
func (r *memStockRepo) Upsert(st *entity.Stock) error {
	c := *st
	r.s.stocks[key(st.WarehouseID, st.VariantID)] = &c
	return nil
}
func (r *memStockRepo) TotalByWarehouse(warehouseID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, st := range r.s.stocks {
		if st.WarehouseID == warehouseID {
			total = total.Add(st.Quantity)
		}
	}
	return total, nil
}

type memEntryRepo struct{ s *memStore }

func (r *memEntryRepo) Create(e *entity.LedgerEntry) error {
	c := *e
	r.s.entries = append(r.s.entries, &c)
	return nil
}
func (r *memEntryRepo) ListByWarehouse(string, *time.Time, *time.Time, int, int) ([]*entity.LedgerEntry, error) {
	return r.s.entries, nil
}
func (r *memEntryRepo) ListByVariant(string, *time.Time, *time.Time, int, int) ([]*entity.LedgerEntry, error) {
	return r.s.entries, nil
}

type memWarehouseRepo struct{ ids map[string]bool }

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error { r.ids[w.ID] = true; return nil }
func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if r.ids[id] {
		return &entity.Warehouse{ID: id, Kind: entity.WarehouseKindCentral}, nil
	}
	return nil, nil
}
func (r *memWarehouseRepo) Update(*entity.Warehouse) error { return nil }
func (r *memWarehouseRepo) List(int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *memWarehouseRepo) ListByBrand(string) ([]*entity.Warehouse, error)   { return nil, nil }
func (r *memWarehouseRepo) CentralByBrand(string) (*entity.Warehouse, error)  { return nil, nil }
func (r *memWarehouseRepo) HasOrders(string) (bool, error)                    { return false, nil }
func (r *memWarehouseRepo) Delete(string) error                               { return nil }

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) RunPurchase(ctx context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	poRepo repository.PurchaseOrderRepository,
	variantRepo repository.VariantRepository,
	entryRepo repository.LedgerEntryRepository,
	stockRepo repository.StockRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&memSupplierRepo{s: r.s}, &memPORepo{s: r.s}, &memVariantRepo{s: r.s},
		&memEntryRepo{s: r.s}, &memStockRepo{s: r.s})
	if err != nil {
		*r.s = *snap
		return err
	}
	return nil
}

func newPurchasingUC(s *memStore) *purchasing.UseCase {
	return purchasing.NewUseCase(
		&memTxRunner{s: s},
		&memWarehouseRepo{ids: map[string]bool{"central": true}},
		&memPORepo{s: s},
		&memSupplierRepo{s: s},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Receive
// ──────────────────────────────────────────────────────────────────────────────

// Recibo con dos líneas: total correcto, asientos positivos y promedio por SKU.
func TestReceive_AcreditaLibroYRecalculaPromedio(t *testing.T) {
	s := newMemStore()
	s.addVariant("v-tela", "TELA-AZUL")
	s.addVariant("v-boton", "BOTON-12")
	// Saldo previo de tela: 100 uds a 50.000
	s.stocks[key("central", "v-tela")] = &entity.Stock{
		WarehouseID: "central", VariantID: "v-tela",
		Quantity: d("100"), AvgCost: d("50000"),
	}
	uc := newPurchasingUC(s)

	po, err := uc.Receive(context.Background(), purchasing.ReceiveInput{
		WarehouseID:  "central",
		SupplierName: "Textiles del Norte",
		Code:         "PO-2025-001",
		Lines: []purchasing.ReceiveLine{
			{VariantID: "v-tela", Quantity: d("50"), UnitPrice: d("80000")},
			{VariantID: "v-boton", Quantity: d("200"), UnitPrice: d("150")},
		},
		UserID: "user-1",
	})
	require.NoError(t, err)
	require.NotNil(t, po)

	// Total = 50*80000 + 200*150 = 4.030.000
	assert.True(t, d("4030000").Equal(po.TotalAmount), "total, got %s", po.TotalAmount)
	assert.Equal(t, entity.PurchaseOrderStatusCompleted, po.Status)
	require.Len(t, po.Items, 2)

	// Promedio de tela: ((100*50000)+(50*80000))/150 = 60000
	tela := s.stocks[key("central", "v-tela")]
	assert.True(t, d("150").Equal(tela.Quantity))
	assert.True(t, d("60000").Equal(tela.AvgCost), "promedio tela, got %s", tela.AvgCost)
	// El costo de referencia del SKU refleja el nuevo promedio
	assert.True(t, d("60000").Equal(s.variants["v-tela"].CostPrice))

	boton := s.stocks[key("central", "v-boton")]
	assert.True(t, d("200").Equal(boton.Quantity))
	assert.True(t, d("150").Equal(boton.AvgCost))

	require.Len(t, s.entries, 2)
	for _, e := range s.entries {
		assert.Equal(t, entity.EntryTypePurchaseIn, e.Type)
		assert.True(t, e.Quantity.IsPositive())
	}
}

// po_code duplicado: rechazo sin efectos.
func TestReceive_CodigoDuplicado(t *testing.T) {
	s := newMemStore()
	s.addVariant("v-tela", "TELA-AZUL")
	uc := newPurchasingUC(s)
	ctx := context.Background()

	input := purchasing.ReceiveInput{
		WarehouseID:  "central",
		SupplierName: "Proveedor X",
		Code:         "PO-REP",
		Lines:        []purchasing.ReceiveLine{{VariantID: "v-tela", Quantity: d("10"), UnitPrice: d("100")}},
		UserID:       "user-1",
	}
	_, err := uc.Receive(ctx, input)
	require.NoError(t, err)

	_, err = uc.Receive(ctx, input)
	require.ErrorIs(t, err, domain.ErrDuplicateCode)
	assert.Len(t, s.orders, 1, "solo la primera compra queda registrada")
	assert.Len(t, s.entries, 1)
}

// Líneas inválidas: cantidad o precio no positivos, sin proveedor, sin líneas.
func TestReceive_Validaciones(t *testing.T) {
	s := newMemStore()
	s.addVariant("v-tela", "TELA-AZUL")
	uc := newPurchasingUC(s)
	ctx := context.Background()

	cases := []purchasing.ReceiveInput{
		{WarehouseID: "central", SupplierName: "P", Code: "PO-1",
			Lines: []purchasing.ReceiveLine{{VariantID: "v-tela", Quantity: d("0"), UnitPrice: d("100")}}},
		{WarehouseID: "central", SupplierName: "P", Code: "PO-2",
			Lines: []purchasing.ReceiveLine{{VariantID: "v-tela", Quantity: d("10"), UnitPrice: d("-5")}}},
		{WarehouseID: "central", Code: "PO-3",
			Lines: []purchasing.ReceiveLine{{VariantID: "v-tela", Quantity: d("10"), UnitPrice: d("100")}}},
		{WarehouseID: "central", SupplierName: "P", Code: "PO-4"},
	}
	for _, in := range cases {
		_, err := uc.Receive(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "code %s", in.Code)
	}
	assert.Empty(t, s.orders)
	assert.Empty(t, s.entries)
}

// Variante inexistente en una línea: todo el recibo se revierte.
func TestReceive_VarianteInexistenteRevierteTodo(t *testing.T) {
	s := newMemStore()
	s.addVariant("v-tela", "TELA-AZUL")
	uc := newPurchasingUC(s)

	_, err := uc.Receive(context.Background(), purchasing.ReceiveInput{
		WarehouseID:  "central",
		SupplierName: "Proveedor X",
		Code:         "PO-MIX",
		Lines: []purchasing.ReceiveLine{
			{VariantID: "v-tela", Quantity: d("10"), UnitPrice: d("100")},
			{VariantID: "v-fantasma", Quantity: d("5"), UnitPrice: d("100")},
		},
		UserID: "user-1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.orders)
	assert.Empty(t, s.entries)
	assert.Empty(t, s.stocks)
}

// Dos recibos con variantes del mismo nombre de proveedor (distinto casing y
// espaciado) reutilizan un único proveedor.
func TestReceive_ProveedorPorNombreIdempotente(t *testing.T) {
	s := newMemStore()
	s.addVariant("v-tela", "TELA-AZUL")
	uc := newPurchasingUC(s)
	ctx := context.Background()

	po1, err := uc.Receive(ctx, purchasing.ReceiveInput{
		WarehouseID: "central", SupplierName: "Textiles  del Norte", Code: "PO-A",
		Lines:  []purchasing.ReceiveLine{{VariantID: "v-tela", Quantity: d("1"), UnitPrice: d("100")}},
		UserID: "user-1",
	})
	require.NoError(t, err)

	po2, err := uc.Receive(ctx, purchasing.ReceiveInput{
		WarehouseID: "central", SupplierName: "TEXTILES DEL NORTE", Code: "PO-B",
		Lines:  []purchasing.ReceiveLine{{VariantID: "v-tela", Quantity: d("2"), UnitPrice: d("100")}},
		UserID: "user-1",
	})
	require.NoError(t, err)

	assert.Len(t, s.suppliers, 1, "un solo proveedor para ambas formas del nombre")
	assert.Equal(t, po1.SupplierID, po2.SupplierID)
}

// SupplierID inexistente: rechazo sin efectos.
func TestReceive_ProveedorPorIDInexistente(t *testing.T) {
	s := newMemStore()
	s.addVariant("v-tela", "TELA-AZUL")
	uc := newPurchasingUC(s)

	_, err := uc.Receive(context.Background(), purchasing.ReceiveInput{
		WarehouseID: "central", SupplierID: "sup-fantasma", Code: "PO-X",
		Lines:  []purchasing.ReceiveLine{{VariantID: "v-tela", Quantity: d("1"), UnitPrice: d("100")}},
		UserID: "user-1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.orders)
}
