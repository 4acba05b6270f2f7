package entity

import "time"

// Shipment representa un despacho de salida. CustomerID es el cliente facturado;
// el pool de origen que aportó el stock puede ser otro cliente y no se persiste
// (las reversiones siempre reponen el pool del facturado).
type Shipment struct {
	ID           int64
	CustomerID   int64
	ProductID    int64
	Quantity     int64 // siempre positiva
	ShipmentDate time.Time
	RMATicket    string
	CreatedAt    time.Time
}
