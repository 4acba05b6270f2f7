package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad saldo+movimiento para el motor de inventario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		poolRepo repository.StockPoolRepository,
		inboundRepo repository.InboundTransactionRepository,
	) error) error
}
