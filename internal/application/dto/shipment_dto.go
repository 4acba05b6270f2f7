package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// CreateShipmentRequest body para POST /shipments. StockSourceCustomerID
// permite despachar desde el pool de otro cliente; ausente = el facturado.
type CreateShipmentRequest struct {
	CustomerID            int64     `json:"customer_id"`
	ProductID             int64     `json:"product_id"`
	Quantity              int64     `json:"quantity"`
	ShipmentDate          time.Time `json:"shipment_date"`
	RMATicket             string    `json:"rma_ticket,omitempty"`
	StockSourceCustomerID *int64    `json:"stock_source_customer_id,omitempty"`
}

// BatchShipmentItem línea de un despacho por lote; el origen se resuelve por ítem.
type BatchShipmentItem struct {
	ProductID             int64  `json:"product_id"`
	Quantity              int64  `json:"quantity"`
	StockSourceCustomerID *int64 `json:"stock_source_customer_id,omitempty"`
}

// BatchShipmentRequest body para POST /shipments/batch. Todo-o-nada.
type BatchShipmentRequest struct {
	CustomerID   int64               `json:"customer_id"`
	ShipmentDate time.Time           `json:"shipment_date"`
	RMATicket    string              `json:"rma_ticket,omitempty"`
	Items        []BatchShipmentItem `json:"items"`
}

// UpdateShipmentRequest body para PUT /shipments/:id. Campos ausentes no se tocan.
type UpdateShipmentRequest struct {
	Quantity     *int64     `json:"quantity,omitempty"`
	ShipmentDate *time.Time `json:"shipment_date,omitempty"`
	RMATicket    *string    `json:"rma_ticket,omitempty"`
}

// ShipmentResponse despacho con cliente facturado y producto resueltos.
type ShipmentResponse struct {
	ID           int64            `json:"id"`
	Quantity     int64            `json:"quantity"`
	ShipmentDate time.Time        `json:"shipment_date"`
	RMATicket    string           `json:"rma_ticket,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	Customer     CustomerResponse `json:"customer"`
	Product      ProductResponse  `json:"product"`
}

// NewShipmentResponse mapea el read model al DTO.
func NewShipmentResponse(d *repository.ShipmentDetail) *ShipmentResponse {
	return &ShipmentResponse{
		ID:           d.Shipment.ID,
		Quantity:     d.Shipment.Quantity,
		ShipmentDate: d.Shipment.ShipmentDate,
		RMATicket:    d.Shipment.RMATicket,
		CreatedAt:    d.Shipment.CreatedAt,
		Customer:     NewCustomerResponse(&d.Customer),
		Product:      NewProductResponse(&d.Product),
	}
}
