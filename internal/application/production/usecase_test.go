package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textil-api/internal/application/production"
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
	orders   map[string]*entity.ProductionOrder
	receives []*entity.ReceiveRecord
	boms     map[string]*entity.BOM
	variants map[string]*entity.Variant
	stocks   map[string]*entity.Stock // "wh|variant"
	entries  []*entity.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{
		orders:   make(map[string]*entity.ProductionOrder),
		boms:     make(map[string]*entity.BOM),
		variants: make(map[string]*entity.Variant),
		stocks:   make(map[string]*entity.Stock),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.orders {
		c := *v
		cp.orders[k] = &c
	}
	for k, v := range s.boms {
		c := *v
		c.Lines = append([]entity.BOMLine(nil), v.Lines...)
		cp.boms[k] = &c
	}
	for k, v := range s.variants {
		c := *v
		cp.variants[k] = &c
	}
	for k, v := range s.stocks {
		c := *v
		cp.stocks[k] = &c
	}
	cp.receives = append(cp.receives, s.receives...)
	cp.entries = append(cp.entries, s.entries...)
	return cp
}

func key(warehouseID, variantID string) string { return warehouseID + "|" + variantID }

func (s *memStore) addVariant(id, sku, variantType string) {
	s.variants[id] = &entity.Variant{ID: id, SKU: sku, Name: sku, Type: variantType}
}

func (s *memStore) setStock(warehouseID, variantID string, qty, avg decimal.Decimal) {
	s.stocks[key(warehouseID, variantID)] = &entity.Stock{
		WarehouseID: warehouseID, VariantID: variantID, Quantity: qty, AvgCost: avg,
	}
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(o *entity.ProductionOrder) error { r.s.orders[o.ID] = o; return nil }
func (r *memOrderRepo) GetByID(id string) (*entity.ProductionOrder, error) {
	if o, ok := r.s.orders[id]; ok {
		c := *o
		return &c, nil
	}
	return nil, nil
}
func (r *memOrderRepo) GetByCode(code string) (*entity.ProductionOrder, error) {
	for _, o := range r.s.orders {
		if o.Code == code {
			c := *o
			return &c, nil
		}
	}
	return nil, nil
}
func (r *memOrderRepo) GetForUpdate(id string) (*entity.ProductionOrder, error) {
	return r.GetByID(id)
}
func (r *memOrderRepo) Update(o *entity.ProductionOrder) error {
	c := *o
	r.s.orders[o.ID] = &c
	return nil
}
func (r *memOrderRepo) Delete(id string) error { delete(r.s.orders, id); return nil }
func (r *memOrderRepo) List(warehouseID string, limit, offset int) ([]*entity.ProductionOrder, error) {
	var out []*entity.ProductionOrder
	for _, o := range r.s.orders {
		if warehouseID == "" || o.WarehouseID == warehouseID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (r *memOrderRepo) AddReceive(rec *entity.ReceiveRecord) error {
	c := *rec
	r.s.receives = append(r.s.receives, &c)
	return nil
}
func (r *memOrderRepo) ListReceives(orderID string) ([]*entity.ReceiveRecord, error) {
	var out []*entity.ReceiveRecord
	for _, rec := range r.s.receives {
		if rec.OrderID == orderID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type memBOMRepo struct{ s *memStore }

func (r *memBOMRepo) Create(b *entity.BOM) error             { r.s.boms[b.ID] = b; return nil }
func (r *memBOMRepo) GetByID(id string) (*entity.BOM, error) { return r.s.boms[id], nil }
func (r *memBOMRepo) List(limit, offset int) ([]*entity.BOM, error) {
	var out []*entity.BOM
	for _, b := range r.s.boms {
		out = append(out, b)
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
		return &entity.Warehouse{ID: id, Name: "Taller " + id, Kind: entity.WarehouseKindWorkshop}, nil
	}
	return nil, nil
}
func (r *memWarehouseRepo) Update(*entity.Warehouse) error                   { return nil }
func (r *memWarehouseRepo) List(int, int) ([]*entity.Warehouse, error)       { return nil, nil }
func (r *memWarehouseRepo) ListByBrand(string) ([]*entity.Warehouse, error)  { return nil, nil }
func (r *memWarehouseRepo) CentralByBrand(string) (*entity.Warehouse, error) { return nil, nil }
func (r *memWarehouseRepo) HasOrders(string) (bool, error)                   { return false, nil }
func (r *memWarehouseRepo) Delete(string) error                              { return nil }

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) RunProduction(ctx context.Context, fn func(
	orderRepo repository.ProductionOrderRepository,
	bomRepo repository.BOMRepository,
	variantRepo repository.VariantRepository,
	entryRepo repository.LedgerEntryRepository,
	stockRepo repository.StockRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&memOrderRepo{s: r.s}, &memBOMRepo{s: r.s}, &memVariantRepo{s: r.s},
		&memEntryRepo{s: r.s}, &memStockRepo{s: r.s})
	if err != nil {
		*r.s = *snap
		return err
	}
	return nil
}

func newProductionUC(s *memStore) *production.UseCase {
	return production.NewUseCase(
		&memTxRunner{s: s},
		&memOrderRepo{s: s},
		&memBOMRepo{s: s},
		&memWarehouseRepo{ids: map[string]bool{"taller": true}},
		&memVariantRepo{s: s},
	)
}

// seedShirtBOM siembra camisa (producto), tela y botones (materiales) y la
// receta: 2m de tela + 5 botones por camisa.
func seedShirtBOM(t *testing.T, s *memStore, uc *production.UseCase) *entity.BOM {
	t.Helper()
	s.addVariant("v-camisa", "CAMISA-M", entity.VariantTypeProduct)
	s.addVariant("v-tela", "TELA-AZUL", entity.VariantTypeMaterial)
	s.addVariant("v-boton", "BOTON-12", entity.VariantTypeMaterial)
	bom, err := uc.CreateBOM(context.Background(), production.CreateBOMInput{
		Name:            "Receta camisa M",
		OutputVariantID: "v-camisa",
		Lines: []production.BOMLineInput{
			{MaterialVariantID: "v-tela", QuantityNeeded: d("2")},
			{MaterialVariantID: "v-boton", QuantityNeeded: d("5")},
		},
	})
	require.NoError(t, err)
	return bom
}

func createOrder(t *testing.T, uc *production.UseCase, bomID, code string, qty string) *entity.ProductionOrder {
	t.Helper()
	order, err := uc.Create(context.Background(), production.CreateOrderInput{
		Code:            code,
		WarehouseID:     "taller",
		OutputVariantID: "v-camisa",
		BOMID:           bomID,
		QuantityPlanned: d(qty),
		StartDate:       time.Now(),
		DueDate:         time.Now().Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return order
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// La orden nace en draft sin tocar el libro.
func TestCreate_OrdenEnBorradorSinAsientos(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)

	order := createOrder(t, uc, bom.ID, "OP-001", "10")
	assert.Equal(t, entity.ProductionStatusDraft, order.Status)
	assert.True(t, order.MaterialCost.IsZero())
	assert.Empty(t, s.entries, "crear no publica asientos")
}

// Código duplicado de orden: rechazo.
func TestCreate_CodigoDuplicado(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)
	createOrder(t, uc, bom.ID, "OP-001", "10")

	_, err := uc.Create(context.Background(), production.CreateOrderInput{
		Code: "OP-001", WarehouseID: "taller", OutputVariantID: "v-camisa",
		BOMID: bom.ID, QuantityPlanned: d("5"),
	})
	require.ErrorIs(t, err, domain.ErrDuplicateCode)
}

// Start consume la materia prima al promedio vigente y acumula MaterialCost.
func TestStart_ConsumeMateriaPrima(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)
	// 10 camisas requieren 20m de tela y 50 botones
	s.setStock("taller", "v-tela", d("30"), d("12000"))
	s.setStock("taller", "v-boton", d("100"), d("200"))
	order := createOrder(t, uc, bom.ID, "OP-001", "10")

	require.NoError(t, uc.Start(context.Background(), order.ID, "user-1"))

	got := s.orders[order.ID]
	assert.Equal(t, entity.ProductionStatusInProgress, got.Status)
	// MaterialCost = 20*12000 + 50*200 = 250.000
	assert.True(t, d("250000").Equal(got.MaterialCost), "costo de materia prima, got %s", got.MaterialCost)

	assert.True(t, d("10").Equal(s.stocks[key("taller", "v-tela")].Quantity))
	assert.True(t, d("50").Equal(s.stocks[key("taller", "v-boton")].Quantity))

	require.Len(t, s.entries, 2)
	for _, e := range s.entries {
		assert.Equal(t, entity.EntryTypeProductionOut, e.Type)
		assert.True(t, e.Quantity.IsNegative())
	}
}

// Materia prima insuficiente: la orden queda en draft y el libro intacto.
func TestStart_MateriaPrimaInsuficiente(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)
	s.setStock("taller", "v-tela", d("30"), d("12000"))
	s.setStock("taller", "v-boton", d("49"), d("200")) // faltan botones
	order := createOrder(t, uc, bom.ID, "OP-001", "10")

	err := uc.Start(context.Background(), order.ID, "user-1")
	require.ErrorIs(t, err, domain.ErrInsufficientMaterial)

	got := s.orders[order.ID]
	assert.Equal(t, entity.ProductionStatusDraft, got.Status, "la orden permanece en draft")
	assert.True(t, got.MaterialCost.IsZero())
	assert.True(t, d("30").Equal(s.stocks[key("taller", "v-tela")].Quantity), "tela intacta")
	assert.True(t, d("49").Equal(s.stocks[key("taller", "v-boton")].Quantity))
	assert.Empty(t, s.entries, "ningún asiento parcial")
}

// Start requiere draft: una orden en curso no puede iniciarse dos veces.
func TestStart_SoloDesdeDraft(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)
	s.setStock("taller", "v-tela", d("100"), d("12000"))
	s.setStock("taller", "v-boton", d("100"), d("200"))
	order := createOrder(t, uc, bom.ID, "OP-001", "10")

	require.NoError(t, uc.Start(context.Background(), order.ID, "user-1"))
	err := uc.Start(context.Background(), order.ID, "user-1")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Recepciones parciales: acreditan el producto al costo unitario asignado y
// acumulan QuantityFinished; el exceso sobre lo planificado se admite.
func TestReceive_AcreditaAlCostoAsignado(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)
	s.setStock("taller", "v-tela", d("30"), d("12000"))
	s.setStock("taller", "v-boton", d("100"), d("200"))
	order := createOrder(t, uc, bom.ID, "OP-001", "10")
	ctx := context.Background()
	require.NoError(t, uc.Start(ctx, order.ID, "user-1"))

	// Costo unitario asignado: 250000 / 10 = 25000
	require.NoError(t, uc.Receive(ctx, order.ID, "user-1", d("4"), "primer lote"))
	require.NoError(t, uc.Receive(ctx, order.ID, "user-1", d("7"), "lote final con extra"))

	got := s.orders[order.ID]
	assert.True(t, d("11").Equal(got.QuantityFinished), "acumulado admite exceso")
	assert.Equal(t, entity.ProductionStatusInProgress, got.Status, "recibir no cambia el estado")

	camisas := s.stocks[key("taller", "v-camisa")]
	assert.True(t, d("11").Equal(camisas.Quantity))
	assert.True(t, d("25000").Equal(camisas.AvgCost), "producto al costo asignado, got %s", camisas.AvgCost)

	records, err := uc.History(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "primer lote", records[0].Note)
}

// Recibir exige in_progress y cantidad positiva.
func TestReceive_Validaciones(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)
	order := createOrder(t, uc, bom.ID, "OP-001", "10")
	ctx := context.Background()

	err := uc.Receive(ctx, order.ID, "user-1", d("5"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "orden en draft no recibe")

	err = uc.Receive(ctx, order.ID, "user-1", d("0"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cierre normal y forzado; los estados terminales no admiten más transiciones.
func TestFinish_EstadosTerminales(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)
	s.setStock("taller", "v-tela", d("100"), d("12000"))
	s.setStock("taller", "v-boton", d("100"), d("200"))
	ctx := context.Background()

	// completed: cerrar sin recepciones es válido y no toca el libro
	o1 := createOrder(t, uc, bom.ID, "OP-001", "10")
	require.NoError(t, uc.Start(ctx, o1.ID, "user-1"))
	entriesAfterStart := len(s.entries)
	require.NoError(t, uc.Finish(ctx, o1.ID))
	assert.Equal(t, entity.ProductionStatusCompleted, s.orders[o1.ID].Status)
	assert.Len(t, s.entries, entriesAfterStart, "cerrar no publica asientos")

	// force_finished
	o2 := createOrder(t, uc, bom.ID, "OP-002", "5")
	require.NoError(t, uc.Start(ctx, o2.ID, "user-1"))
	require.NoError(t, uc.ForceFinish(ctx, o2.ID))
	assert.Equal(t, entity.ProductionStatusForceFinished, s.orders[o2.ID].Status)

	// terminales: sin transiciones ni recepciones
	assert.ErrorIs(t, uc.Finish(ctx, o1.ID), domain.ErrInvalidTransition)
	assert.ErrorIs(t, uc.ForceFinish(ctx, o2.ID), domain.ErrInvalidTransition)
	assert.ErrorIs(t, uc.Receive(ctx, o1.ID, "user-1", d("1"), ""), domain.ErrInvalidTransition)
	assert.ErrorIs(t, uc.Start(ctx, o2.ID, "user-1"), domain.ErrInvalidTransition)
}

// Update y Delete solo proceden en draft.
func TestUpdateDelete_SoloEnDraft(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)
	s.setStock("taller", "v-tela", d("100"), d("12000"))
	s.setStock("taller", "v-boton", d("100"), d("200"))
	ctx := context.Background()

	order := createOrder(t, uc, bom.ID, "OP-001", "10")
	newQty := d("15")
	require.NoError(t, uc.Update(ctx, order.ID, production.UpdateOrderInput{QuantityPlanned: &newQty}))
	assert.True(t, d("15").Equal(s.orders[order.ID].QuantityPlanned))

	require.NoError(t, uc.Start(ctx, order.ID, "user-1"))
	err := uc.Update(ctx, order.ID, production.UpdateOrderInput{QuantityPlanned: &newQty})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "en curso no se edita")
	assert.ErrorIs(t, uc.Delete(ctx, order.ID), domain.ErrInvalidTransition)

	o2 := createOrder(t, uc, bom.ID, "OP-002", "3")
	require.NoError(t, uc.Delete(ctx, o2.ID))
	_, ok := s.orders[o2.ID]
	assert.False(t, ok)
}

// Details expande la receta a cantidades totales requeridas.
func TestDetails_RequerimientosTotales(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)
	order := createOrder(t, uc, bom.ID, "OP-001", "10")

	details, err := uc.Details(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, details.Requirements, 2)

	byID := map[string]production.Requirement{}
	for _, req := range details.Requirements {
		byID[req.MaterialVariantID] = req
	}
	assert.True(t, d("20").Equal(byID["v-tela"].TotalRequired), "2m × 10 camisas")
	assert.True(t, d("50").Equal(byID["v-boton"].TotalRequired), "5 botones × 10 camisas")
	assert.Equal(t, "TELA-AZUL", byID["v-tela"].SKU)
}

// QuickCreate: variante + receta + orden; con auto-start fallido por faltante,
// todo lo creado persiste y la orden queda en draft.
func TestQuickCreate_FlujosCompletos(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	s.addVariant("v-tela", "TELA-AZUL", entity.VariantTypeMaterial)
	s.setStock("taller", "v-tela", d("100"), d("12000"))
	ctx := context.Background()

	// Flujo con AutoStart y materia prima suficiente
	order, err := uc.QuickCreate(ctx, production.QuickCreateInput{
		NewProductName:  "Vestido floral",
		NewProductSKU:   "VESTIDO-F",
		OrderCode:       "OP-Q1",
		WarehouseID:     "taller",
		QuantityPlanned: d("10"),
		Lines:           []production.BOMLineInput{{MaterialVariantID: "v-tela", QuantityNeeded: d("3")}},
		AutoStart:       true,
		UserID:          "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductionStatusInProgress, order.Status)
	assert.True(t, d("70").Equal(s.stocks[key("taller", "v-tela")].Quantity))

	// SKU duplicado
	_, err = uc.QuickCreate(ctx, production.QuickCreateInput{
		NewProductName: "Otro", NewProductSKU: "VESTIDO-F", OrderCode: "OP-Q2",
		WarehouseID: "taller", QuantityPlanned: d("1"),
		Lines: []production.BOMLineInput{{MaterialVariantID: "v-tela", QuantityNeeded: d("1")}},
	})
	require.ErrorIs(t, err, domain.ErrDuplicateCode)

	// AutoStart con faltante: la orden existe en draft, el consumo se rechaza
	order3, err := uc.QuickCreate(ctx, production.QuickCreateInput{
		NewProductName:  "Abrigo",
		NewProductSKU:   "ABRIGO-L",
		OrderCode:       "OP-Q3",
		WarehouseID:     "taller",
		QuantityPlanned: d("50"), // requiere 150m, solo hay 70
		Lines:           []production.BOMLineInput{{MaterialVariantID: "v-tela", QuantityNeeded: d("3")}},
		AutoStart:       true,
		UserID:          "user-1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientMaterial)
	require.NotNil(t, order3)
	assert.Equal(t, entity.ProductionStatusDraft, s.orders[order3.ID].Status)
	assert.True(t, d("70").Equal(s.stocks[key("taller", "v-tela")].Quantity), "sin consumo parcial")
}

// Un código de orden duplicado revierte la creación completa: ni la variante
// nueva ni su receta sobreviven al fallo.
func TestQuickCreate_CodigoDuplicadoSinHuerfanos(t *testing.T) {
	s := newMemStore()
	uc := newProductionUC(s)
	bom := seedShirtBOM(t, s, uc)
	createOrder(t, uc, bom.ID, "OP-001", "10")
	variantsAntes := len(s.variants)
	bomsAntes := len(s.boms)

	_, err := uc.QuickCreate(context.Background(), production.QuickCreateInput{
		NewProductName:  "Falda plisada",
		NewProductSKU:   "FALDA-P", // SKU libre, el conflicto es el código de orden
		OrderCode:       "OP-001",
		WarehouseID:     "taller",
		QuantityPlanned: d("5"),
		Lines:           []production.BOMLineInput{{MaterialVariantID: "v-tela", QuantityNeeded: d("2")}},
	})
	require.ErrorIs(t, err, domain.ErrDuplicateCode)

	assert.Len(t, s.variants, variantsAntes, "la variante del flujo fallido no persiste")
	assert.Len(t, s.boms, bomsAntes, "la receta del flujo fallido no persiste")
	v, err := (&memVariantRepo{s: s}).GetBySKU("FALDA-P")
	require.NoError(t, err)
	assert.Nil(t, v)
}
