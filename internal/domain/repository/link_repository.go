package repository

import "github.com/jhoicas/stock-ledger/internal/domain/entity"

// LinkRepository define el puerto para la asociación cliente↔producto del catálogo.
type LinkRepository interface {
	// Create inserta la asociación. ErrDuplicate si ya existe.
	Create(link *entity.CustomerProductLink) error
	Exists(customerID, productID int64) (bool, error)
	// Delete elimina la asociación. ErrNotFound si no existe.
	Delete(customerID, productID int64) error
	ListProductsByCustomer(customerID int64) ([]*entity.Product, error)
}
