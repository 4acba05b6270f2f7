package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ShipmentDetail es el read model de un despacho con cliente y producto resueltos.
type ShipmentDetail struct {
	Shipment entity.Shipment
	Customer entity.Customer
	Product  entity.Product
}

// ShipmentRepository define el puerto de persistencia para despachos.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id int64) (*entity.Shipment, error)
	Update(shipment *entity.Shipment) error
	Delete(id int64) error
	// ListDetailed devuelve los despachos, más reciente primero (created_at desc).
	ListDetailed(ctx context.Context) ([]*ShipmentDetail, error)
}
