package entity

import "time"

// StockPool representa el saldo de stock de un producto para un cliente dueño.
// Hay a lo sumo un registro por par (customer, product). El saldo almacenado es
// la fuente de verdad: los movimientos (InboundTransaction, Shipment) son la
// pista de auditoría, no una fuente de replay.
type StockPool struct {
	ID          int64
	CustomerID  int64
	ProductID   int64
	Quantity    int64 // nunca negativo tras commit
	TargetStock int64 // umbral informativo, no se valida
	SafetyStock int64 // umbral informativo, no se valida
	UpdatedAt   time.Time
}
