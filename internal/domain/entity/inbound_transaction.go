package entity

import "time"

// Remarks por defecto cuando la recepción no trae observaciones.
const DefaultInboundRemarks = "Initialization"

// InboundTransaction es un registro inmutable de entrada o ajuste de stock.
// Quantity es positiva en recepciones; en ajustes correctivos puede ser negativa.
// Append-only: nunca se modifica tras su creación.
type InboundTransaction struct {
	ID          int64
	CustomerID  int64
	ProductID   int64
	Quantity    int64
	InboundDate time.Time
	Remarks     string
}
