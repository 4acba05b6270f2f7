package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Un fakeTxRunner serializa con mutex y, si la función
// retorna error, restaura el snapshot previo (simula el rollback de la BD).
// ──────────────────────────────────────────────────────────────────────────────

type fakePoolRepo struct {
	pools  map[int64]*entity.StockPool
	nextID int64
}

func newFakePoolRepo() *fakePoolRepo {
	return &fakePoolRepo{pools: make(map[int64]*entity.StockPool), nextID: 1}
}

func (r *fakePoolRepo) GetByID(id int64) (*entity.StockPool, error) {
	if p, ok := r.pools[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePoolRepo) GetByOwnerAndProduct(customerID, productID int64) (*entity.StockPool, error) {
	for _, p := range r.pools {
		if p.CustomerID == customerID && p.ProductID == productID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePoolRepo) GetForUpdate(customerID, productID int64) (*entity.StockPool, error) {
	return r.GetByOwnerAndProduct(customerID, productID)
}

func (r *fakePoolRepo) GetByIDForUpdate(id int64) (*entity.StockPool, error) {
	return r.GetByID(id)
}

func (r *fakePoolRepo) Create(pool *entity.StockPool) error {
	pool.ID = r.nextID
	r.nextID++
	cp := *pool
	r.pools[pool.ID] = &cp
	return nil
}

func (r *fakePoolRepo) Update(pool *entity.StockPool) error {
	if _, ok := r.pools[pool.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *pool
	r.pools[pool.ID] = &cp
	return nil
}

func (r *fakePoolRepo) Delete(id int64) error {
	if _, ok := r.pools[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.pools, id)
	return nil
}

func (r *fakePoolRepo) ListDetailed(ctx context.Context) ([]*repository.StockPoolDetail, error) {
	out := make([]*repository.StockPoolDetail, 0, len(r.pools))
	for _, p := range r.pools {
		out = append(out, &repository.StockPoolDetail{Pool: *p})
	}
	return out, nil
}

func (r *fakePoolRepo) snapshot() map[int64]*entity.StockPool {
	snap := make(map[int64]*entity.StockPool, len(r.pools))
	for id, p := range r.pools {
		cp := *p
		snap[id] = &cp
	}
	return snap
}

type fakeInboundRepo struct {
	rows   []*entity.InboundTransaction
	nextID int64
}

func newFakeInboundRepo() *fakeInboundRepo {
	return &fakeInboundRepo{nextID: 1}
}

func (r *fakeInboundRepo) Create(tx *entity.InboundTransaction) error {
	tx.ID = r.nextID
	r.nextID++
	cp := *tx
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeInboundRepo) ListDetailed(ctx context.Context) ([]*repository.InboundDetail, error) {
	out := make([]*repository.InboundDetail, 0, len(r.rows))
	for i := len(r.rows) - 1; i >= 0; i-- {
		out = append(out, &repository.InboundDetail{Transaction: *r.rows[i]})
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[int64]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return c, nil
	}
	return nil, nil
}
func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Update(c *entity.Customer) error                    { return nil }
func (r *fakeCustomerRepo) Delete(id int64) error                              { return nil }

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error)      { return nil, nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                    { return nil }
func (r *fakeProductRepo) Delete(id int64) error                             { return nil }

type fakeTxRunner struct {
	mu      sync.Mutex
	pools   *fakePoolRepo
	inbound *fakeInboundRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	poolRepo repository.StockPoolRepository,
	inboundRepo repository.InboundTransactionRepository,
) error) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	poolSnap := tr.pools.snapshot()
	inboundSnap := append([]*entity.InboundTransaction(nil), tr.inbound.rows...)
	if err := fn(tr.pools, tr.inbound); err != nil {
		tr.pools.pools = poolSnap
		tr.inbound.rows = inboundSnap
		return err
	}
	return nil
}

// buildMovementUC arma el caso de uso con un cliente 1 y un producto 1 ya registrados.
func buildMovementUC() (*inventory.MovementUseCase, *fakePoolRepo, *fakeInboundRepo) {
	pools := newFakePoolRepo()
	inbound := newFakeInboundRepo()
	customers := &fakeCustomerRepo{customers: map[int64]*entity.Customer{
		1: {ID: 1, Name: "ACME"},
		2: {ID: 2, Name: "Globex"},
	}}
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, SKUCode: "SKU-001", Name: "Widget"},
	}}
	uc := inventory.NewMovementUseCase(&fakeTxRunner{pools: pools, inbound: inbound}, pools, inbound, customers, products)
	return uc, pools, inbound
}

func int64Ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Receive
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: primera recepción crea el pool y deja la entrada en el historial
// con remarks por defecto "Initialization".
func TestReceive_CreaPoolYHistorial(t *testing.T) {
	uc, pools, inbound := buildMovementUC()

	resp, err := uc.Receive(context.Background(), dto.ReceiveStockRequest{
		CustomerID: 1, ProductID: 1, Quantity: 10,
		TargetStock: int64Ptr(50), SafetyStock: int64Ptr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.Quantity)
	assert.Equal(t, int64(50), resp.TargetStock)
	assert.Equal(t, int64(5), resp.SafetyStock)

	pool, err := pools.GetByOwnerAndProduct(1, 1)
	require.NoError(t, err)
	require.NotNil(t, pool, "el pool debe quedar persistido")
	assert.Equal(t, int64(10), pool.Quantity)

	require.Len(t, inbound.rows, 1, "debe quedar exactamente una entrada en el historial")
	assert.Equal(t, int64(10), inbound.rows[0].Quantity)
	assert.Equal(t, "Initialization", inbound.rows[0].Remarks)
}

// Caso 2: una segunda recepción suma al saldo existente; los umbrales solo se
// sobreescriben cuando vienen en el request.
func TestReceive_SumaSobrePoolExistente(t *testing.T) {
	uc, pools, inbound := buildMovementUC()

	_, err := uc.Receive(context.Background(), dto.ReceiveStockRequest{
		CustomerID: 1, ProductID: 1, Quantity: 10,
		TargetStock: int64Ptr(50), SafetyStock: int64Ptr(5),
	})
	require.NoError(t, err)

	resp, err := uc.Receive(context.Background(), dto.ReceiveStockRequest{
		CustomerID: 1, ProductID: 1, Quantity: 7,
		Remarks: "reposición semanal",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(17), resp.Quantity, "10 + 7")
	assert.Equal(t, int64(50), resp.TargetStock, "target sin tocar si no viene en el request")
	assert.Equal(t, int64(5), resp.SafetyStock, "safety sin tocar si no viene en el request")

	require.Len(t, pools.pools, 1, "no debe crearse un segundo pool para el mismo par")
	require.Len(t, inbound.rows, 2)
	assert.Equal(t, "reposición semanal", inbound.rows[1].Remarks)
}

// Caso 3: cantidad no positiva o referencias inexistentes.
func TestReceive_Validaciones(t *testing.T) {
	uc, _, inbound := buildMovementUC()

	_, err := uc.Receive(context.Background(), dto.ReceiveStockRequest{CustomerID: 1, ProductID: 1, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe rechazarse")

	_, err = uc.Receive(context.Background(), dto.ReceiveStockRequest{CustomerID: 99, ProductID: 1, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente inexistente")

	_, err = uc.Receive(context.Background(), dto.ReceiveStockRequest{CustomerID: 1, ProductID: 99, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	assert.Empty(t, inbound.rows, "ninguna validación fallida debe dejar historial")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateEntry (ajuste manual)
// ──────────────────────────────────────────────────────────────────────────────

// Un cambio de cantidad fija el saldo directamente y deja el diff como ajuste
// en el historial con el formato "Manual Adjustment (Set Qty: a -> b)".
func TestUpdateEntry_AjusteDejaAuditoria(t *testing.T) {
	uc, pools, inbound := buildMovementUC()

	resp, err := uc.Receive(context.Background(), dto.ReceiveStockRequest{CustomerID: 1, ProductID: 1, Quantity: 10})
	require.NoError(t, err)

	updated, err := uc.UpdateEntry(context.Background(), resp.ID, dto.UpdateStockPoolRequest{
		Quantity: int64Ptr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.Quantity, "el saldo se fija al valor pedido, no se suma")

	pool, _ := pools.GetByID(resp.ID)
	assert.Equal(t, int64(4), pool.Quantity)

	require.Len(t, inbound.rows, 2, "recepción + ajuste")
	adj := inbound.rows[1]
	assert.Equal(t, int64(-6), adj.Quantity, "el historial lleva el diff, negativo al bajar")
	assert.Equal(t, "Manual Adjustment (Set Qty: 10 -> 4)", adj.Remarks)
}

// La misma cantidad no genera fila de ajuste; los umbrales se actualizan solos.
func TestUpdateEntry_SinCambioDeCantidad(t *testing.T) {
	uc, _, inbound := buildMovementUC()

	resp, err := uc.Receive(context.Background(), dto.ReceiveStockRequest{CustomerID: 1, ProductID: 1, Quantity: 10})
	require.NoError(t, err)

	updated, err := uc.UpdateEntry(context.Background(), resp.ID, dto.UpdateStockPoolRequest{
		Quantity:    int64Ptr(10),
		TargetStock: int64Ptr(80),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), updated.Quantity)
	assert.Equal(t, int64(80), updated.TargetStock)
	assert.Len(t, inbound.rows, 1, "sin diff no hay fila de ajuste")
}

func TestUpdateEntry_Validaciones(t *testing.T) {
	uc, _, _ := buildMovementUC()

	_, err := uc.UpdateEntry(context.Background(), 1, dto.UpdateStockPoolRequest{Quantity: int64Ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa debe rechazarse")

	_, err = uc.UpdateEntry(context.Background(), 999, dto.UpdateStockPoolRequest{Quantity: int64Ptr(5)})
	assert.ErrorIs(t, err, domain.ErrNotFound, "pool inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteEntry
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar el pool NO elimina su historial: las entradas quedan huérfanas.
func TestDeleteEntry_HistorialQuedaHuerfano(t *testing.T) {
	uc, pools, inbound := buildMovementUC()

	resp, err := uc.Receive(context.Background(), dto.ReceiveStockRequest{CustomerID: 1, ProductID: 1, Quantity: 10})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteEntry(context.Background(), resp.ID))
	assert.Empty(t, pools.pools, "el pool debe desaparecer")
	assert.Len(t, inbound.rows, 1, "el historial sobrevive a la eliminación del pool")

	err = uc.DeleteEntry(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "segunda eliminación del mismo pool")
}

// El saldo almacenado es la fuente de verdad: tras recibir 10 y ajustar a 4,
// una nueva recepción parte de 4, no de la suma del historial.
func TestReceive_SaldoEsFuenteDeVerdad(t *testing.T) {
	uc, pools, _ := buildMovementUC()

	resp, err := uc.Receive(context.Background(), dto.ReceiveStockRequest{CustomerID: 1, ProductID: 1, Quantity: 10})
	require.NoError(t, err)
	_, err = uc.UpdateEntry(context.Background(), resp.ID, dto.UpdateStockPoolRequest{Quantity: int64Ptr(4)})
	require.NoError(t, err)

	updated, err := uc.Receive(context.Background(), dto.ReceiveStockRequest{CustomerID: 1, ProductID: 1, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.Quantity, "4 + 3, sin re-derivar del historial")

	pool, _ := pools.GetByID(resp.ID)
	assert.Equal(t, int64(7), pool.Quantity)

	// El historial acumulado (10, -6, 3) llega al mismo valor; es auditoría, no fuente.
	var sum int64
	hist, err := uc.History(context.Background())
	require.NoError(t, err)
	for _, h := range hist {
		sum += h.Quantity
	}
	assert.Equal(t, int64(7), sum)
}
