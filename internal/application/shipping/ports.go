package shipping

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los repositorios
// de despachos atados a esa tx. Un lote completo corre en una sola transacción:
// el primer ítem inválido descarta todos los efectos anteriores (todo-o-nada).
type TxRunner interface {
	RunShipping(ctx context.Context, fn func(
		poolRepo repository.StockPoolRepository,
		shipmentRepo repository.ShipmentRepository,
	) error) error
}
