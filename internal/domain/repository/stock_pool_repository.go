package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// StockPoolDetail es el read model de un pool con cliente y producto resueltos.
type StockPoolDetail struct {
	Pool     entity.StockPool
	Customer entity.Customer
	Product  entity.Product
}

// StockPoolRepository define el puerto para consultar/actualizar saldos por (cliente, producto).
// Usado dentro de transacciones para garantizar consistencia.
type StockPoolRepository interface {
	GetByID(id int64) (*entity.StockPool, error)
	GetByOwnerAndProduct(customerID, productID int64) (*entity.StockPool, error)
	// GetForUpdate bloquea la fila del pool (SELECT FOR UPDATE). Devuelve nil si no existe.
	GetForUpdate(customerID, productID int64) (*entity.StockPool, error)
	// GetByIDForUpdate igual que GetForUpdate pero por ID de pool.
	GetByIDForUpdate(id int64) (*entity.StockPool, error)
	Create(pool *entity.StockPool) error
	Update(pool *entity.StockPool) error
	// Delete elimina el pool. ErrNotFound si no existe. El historial de
	// movimientos del par (cliente, producto) queda huérfano a propósito.
	Delete(id int64) error
	ListDetailed(ctx context.Context) ([]*StockPoolDetail, error)
}
