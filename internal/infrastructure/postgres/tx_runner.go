package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/shipping"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and shipping.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ shipping.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Conflictos de bloqueo/serialización se traducen a ErrTransientContention (reintentable).
func (r *TxRunner) Run(ctx context.Context, fn func(
	poolRepo repository.StockPoolRepository,
	inboundRepo repository.InboundTransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	poolRepo := NewStockPoolRepository(tx)
	inboundRepo := NewInboundTransactionRepository(tx)

	if err := fn(poolRepo, inboundRepo); err != nil {
		return mapContention(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapContention(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// RunShipping igual que Run pero con los repositorios de despachos.
func (r *TxRunner) RunShipping(ctx context.Context, fn func(
	poolRepo repository.StockPoolRepository,
	shipmentRepo repository.ShipmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	poolRepo := NewStockPoolRepository(tx)
	shipmentRepo := NewShipmentRepository(tx)

	if err := fn(poolRepo, shipmentRepo); err != nil {
		return mapContention(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapContention(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// mapContention conserva el error original pero lo marca como contención transitoria
// cuando PostgreSQL reporta conflicto de bloqueo, deadlock o fallo de serialización.
func mapContention(err error) error {
	if isTransientConflict(err) {
		return fmt.Errorf("%v: %w", err, domain.ErrTransientContention)
	}
	return err
}
