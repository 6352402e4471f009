package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textil-api/internal/application/ledger"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: libro + saldos con semántica de transacción (rollback)
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type memDB struct {
	stocks  map[string]*entity.Stock
	entries []*entity.LedgerEntry
	locks   []string // orden de adquisición de bloqueos de fila
}

func newMemDB() *memDB {
	return &memDB{stocks: make(map[string]*entity.Stock)}
}

func stockKey(warehouseID, variantID string) string {
	return warehouseID + "|" + variantID
}

func (db *memDB) snapshot() *memDB {
	cp := newMemDB()
	for k, s := range db.stocks {
		c := *s
		cp.stocks[k] = &c
	}
	cp.entries = append(cp.entries, db.entries...)
	return cp
}

// setStock siembra un saldo inicial.
func (db *memDB) setStock(warehouseID, variantID string, qty, avg decimal.Decimal) {
	db.stocks[stockKey(warehouseID, variantID)] = &entity.Stock{
		WarehouseID: warehouseID,
		VariantID:   variantID,
		Quantity:    qty,
		AvgCost:     avg,
	}
}

type memStockRepo struct{ db *memDB }

// Fila inexistente = saldo cero, igual que el adaptador de postgres.
func (r *memStockRepo) Get(warehouseID, variantID string) (*entity.Stock, error) {
	if s, ok := r.db.stocks[stockKey(warehouseID, variantID)]; ok {
		c := *s
		return &c, nil
	}
	return &entity.Stock{WarehouseID: warehouseID, VariantID: variantID,
		Quantity: decimal.Zero, AvgCost: decimal.Zero}, nil
}

func (r *memStockRepo) GetForUpdate(warehouseID, variantID string) (*entity.Stock, error) {
	r.db.locks = append(r.db.locks, stockKey(warehouseID, variantID))
	return r.Get(warehouseID, variantID)
}

func (r *memStockRepo) Upsert(stock *entity.Stock) error {
	c := *stock
	r.db.stocks[stockKey(stock.WarehouseID, stock.VariantID)] = &c
	return nil
}

func (r *memStockRepo) TotalByWarehouse(warehouseID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.db.stocks {
		if s.WarehouseID == warehouseID {
			total = total.Add(s.Quantity)
		}
	}
	return total, nil
}

type memEntryRepo struct{ db *memDB }

func (r *memEntryRepo) Create(entry *entity.LedgerEntry) error {
	c := *entry
	r.db.entries = append(r.db.entries, &c)
	return nil
}

func (r *memEntryRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.db.entries {
		if e.WarehouseID == warehouseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEntryRepo) ListByVariant(variantID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.db.entries {
		if e.VariantID == variantID {
			out = append(out, e)
		}
	}
	return out, nil
}

// memTxRunner restaura el estado completo si fn falla: simula el rollback de BD.
type memTxRunner struct{ db *memDB }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	entryRepo repository.LedgerEntryRepository,
	stockRepo repository.StockRepository,
) error) error {
	snap := r.db.snapshot()
	if err := fn(&memEntryRepo{db: r.db}, &memStockRepo{db: r.db}); err != nil {
		*r.db = *snap
		return err
	}
	return nil
}

func newLedgerUC(db *memDB) *ledger.UseCase {
	return ledger.NewUseCase(&memTxRunner{db: db}, &memStockRepo{db: db})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Post
// ──────────────────────────────────────────────────────────────────────────────

// Entrada sobre un par (bodega, SKU) sin fila previa: saldo cero implícito.
func TestPost_EntradaSobreSaldoInexistente(t *testing.T) {
	db := newMemDB()
	uc := newLedgerUC(db)

	err := uc.Post(context.Background(), ledger.PostingInput{
		Lines: []ledger.Line{{
			WarehouseID: "wh-1", VariantID: "sku-1",
			Quantity: d("100"), UnitCost: d("50000"),
			Type: entity.EntryTypePurchaseIn,
		}},
		SourceRef: "po-1", UserID: "user-1",
	})
	require.NoError(t, err)

	qty, avg, err := uc.Balance(context.Background(), "wh-1", "sku-1")
	require.NoError(t, err)
	assert.True(t, d("100").Equal(qty))
	assert.True(t, d("50000").Equal(avg))
	require.Len(t, db.entries, 1)
	assert.True(t, d("5000000").Equal(db.entries[0].TotalCost))
}

// Una salida mayor al saldo se rechaza y el libro queda intacto.
func TestPost_SalidaInsuficienteRechazada(t *testing.T) {
	db := newMemDB()
	db.setStock("wh-1", "sku-1", d("10"), d("500"))
	uc := newLedgerUC(db)

	err := uc.Post(context.Background(), ledger.PostingInput{
		Lines: []ledger.Line{{
			WarehouseID: "wh-1", VariantID: "sku-1",
			Quantity: d("-11"),
			Type:     entity.EntryTypeProductionOut,
		}},
		SourceRef: "adj-1", UserID: "user-1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	qty, _, _ := uc.Balance(context.Background(), "wh-1", "sku-1")
	assert.True(t, d("10").Equal(qty), "el saldo no debe cambiar tras un rechazo")
	assert.Empty(t, db.entries, "un rechazo no deja asientos")
}

// Salida exacta al saldo: permitida, deja el par en cero.
func TestPost_SalidaExacta(t *testing.T) {
	db := newMemDB()
	db.setStock("wh-1", "sku-1", d("10"), d("500"))
	uc := newLedgerUC(db)

	err := uc.Post(context.Background(), ledger.PostingInput{
		Lines: []ledger.Line{{
			WarehouseID: "wh-1", VariantID: "sku-1",
			Quantity: d("-10"),
			Type:     entity.EntryTypeProductionOut,
		}},
		SourceRef: "adj-1", UserID: "user-1",
	})
	require.NoError(t, err)

	qty, _, _ := uc.Balance(context.Background(), "wh-1", "sku-1")
	assert.True(t, qty.IsZero())
}

// Operación multi-línea todo-o-nada: si la segunda línea no alcanza,
// tampoco queda aplicada la primera.
func TestPost_MultiLineaTodoONada(t *testing.T) {
	db := newMemDB()
	db.setStock("wh-1", "sku-a", d("100"), d("10"))
	db.setStock("wh-1", "sku-b", d("3"), d("10"))
	uc := newLedgerUC(db)

	err := uc.Post(context.Background(), ledger.PostingInput{
		Lines: []ledger.Line{
			{WarehouseID: "wh-1", VariantID: "sku-a", Quantity: d("-50"), Type: entity.EntryTypeProductionOut},
			{WarehouseID: "wh-1", VariantID: "sku-b", Quantity: d("-5"), Type: entity.EntryTypeProductionOut},
		},
		SourceRef: "op-1", UserID: "user-1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	qtyA, _, _ := uc.Balance(context.Background(), "wh-1", "sku-a")
	qtyB, _, _ := uc.Balance(context.Background(), "wh-1", "sku-b")
	assert.True(t, d("100").Equal(qtyA), "sku-a intacto tras rollback")
	assert.True(t, d("3").Equal(qtyB), "sku-b intacto tras rollback")
	assert.Empty(t, db.entries)
}

// Las entradas recalculan el promedio ponderado; las salidas lo conservan.
func TestPost_PromedioPonderadoYSalidas(t *testing.T) {
	db := newMemDB()
	uc := newLedgerUC(db)
	ctx := context.Background()

	post := func(qty, cost string, entryType string) error {
		return uc.Post(ctx, ledger.PostingInput{
			Lines: []ledger.Line{{
				WarehouseID: "wh-1", VariantID: "sku-1",
				Quantity: d(qty), UnitCost: d(cost), Type: entryType,
			}},
			SourceRef: "src", UserID: "user-1",
		})
	}

	require.NoError(t, post("100", "50000", entity.EntryTypePurchaseIn))
	require.NoError(t, post("50", "80000", entity.EntryTypePurchaseIn))

	_, avg, _ := uc.Balance(ctx, "wh-1", "sku-1")
	assert.True(t, d("60000").Equal(avg), "promedio tras dos compras, got %s", avg)

	// La salida se valora al promedio vigente y no lo altera
	require.NoError(t, post("-30", "0", entity.EntryTypeProductionOut))
	qty, avg2, _ := uc.Balance(ctx, "wh-1", "sku-1")
	assert.True(t, d("120").Equal(qty))
	assert.True(t, d("60000").Equal(avg2), "la salida no mueve el promedio")

	last := db.entries[len(db.entries)-1]
	assert.True(t, d("60000").Equal(last.UnitCost), "salida valorada al promedio vigente")
}

// Cantidad cero: línea inválida, operación rechazada.
func TestPost_CantidadCeroRechazada(t *testing.T) {
	db := newMemDB()
	uc := newLedgerUC(db)

	err := uc.Post(context.Background(), ledger.PostingInput{
		Lines: []ledger.Line{{
			WarehouseID: "wh-1", VariantID: "sku-1",
			Quantity: decimal.Zero, Type: entity.EntryTypeProductionOut,
		}},
		SourceRef: "adj", UserID: "user-1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, db.entries)
}

// Sin líneas no hay operación.
func TestPost_SinLineas(t *testing.T) {
	uc := newLedgerUC(newMemDB())
	err := uc.Post(context.Background(), ledger.PostingInput{SourceRef: "x", UserID: "u"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
