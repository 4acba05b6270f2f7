package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// ReceiveStockRequest body para POST /inventory (recepción de stock).
type ReceiveStockRequest struct {
	CustomerID  int64  `json:"customer_id"`
	ProductID   int64  `json:"product_id"`
	Quantity    int64  `json:"quantity"`
	TargetStock *int64 `json:"target_stock,omitempty"`
	SafetyStock *int64 `json:"safety_stock,omitempty"`
	Remarks     string `json:"remarks,omitempty"`
}

// UpdateStockPoolRequest body para PUT /inventory/:id. Campos ausentes no se tocan.
type UpdateStockPoolRequest struct {
	Quantity    *int64 `json:"quantity,omitempty"`
	TargetStock *int64 `json:"target_stock,omitempty"`
	SafetyStock *int64 `json:"safety_stock,omitempty"`
}

// StockPoolResponse pool con cliente y producto resueltos.
type StockPoolResponse struct {
	ID          int64            `json:"id"`
	CustomerID  int64            `json:"customer_id"`
	ProductID   int64            `json:"product_id"`
	Quantity    int64            `json:"quantity"`
	TargetStock int64            `json:"target_stock"`
	SafetyStock int64            `json:"safety_stock"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Customer    CustomerResponse `json:"customer"`
	Product     ProductResponse  `json:"product"`
}

// InboundResponse entrada del historial con cliente y producto resueltos.
type InboundResponse struct {
	ID          int64            `json:"id"`
	Quantity    int64            `json:"quantity"`
	InboundDate time.Time        `json:"inbound_date"`
	Remarks     string           `json:"remarks,omitempty"`
	Customer    CustomerResponse `json:"customer"`
	Product     ProductResponse  `json:"product"`
}

// NewStockPoolResponse mapea el read model al DTO.
func NewStockPoolResponse(d *repository.StockPoolDetail) *StockPoolResponse {
	return &StockPoolResponse{
		ID:          d.Pool.ID,
		CustomerID:  d.Pool.CustomerID,
		ProductID:   d.Pool.ProductID,
		Quantity:    d.Pool.Quantity,
		TargetStock: d.Pool.TargetStock,
		SafetyStock: d.Pool.SafetyStock,
		UpdatedAt:   d.Pool.UpdatedAt,
		Customer:    NewCustomerResponse(&d.Customer),
		Product:     NewProductResponse(&d.Product),
	}
}

// NewInboundResponse mapea el read model al DTO.
func NewInboundResponse(d *repository.InboundDetail) *InboundResponse {
	return &InboundResponse{
		ID:          d.Transaction.ID,
		Quantity:    d.Transaction.Quantity,
		InboundDate: d.Transaction.InboundDate,
		Remarks:     d.Transaction.Remarks,
		Customer:    NewCustomerResponse(&d.Customer),
		Product:     NewProductResponse(&d.Product),
	}
}
