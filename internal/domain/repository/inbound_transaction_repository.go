package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// InboundDetail es el read model de una entrada con cliente y producto resueltos.
type InboundDetail struct {
	Transaction entity.InboundTransaction
	Customer    entity.Customer
	Product     entity.Product
}

// InboundTransactionRepository define el puerto del historial de entradas (append-only).
type InboundTransactionRepository interface {
	Create(tx *entity.InboundTransaction) error
	// ListDetailed devuelve el historial completo, más reciente primero.
	ListDetailed(ctx context.Context) ([]*InboundDetail, error)
}
