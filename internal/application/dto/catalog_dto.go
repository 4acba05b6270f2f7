package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// CreateCustomerRequest body para POST /customers.
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// UpdateCustomerRequest body para PUT /customers/:id.
type UpdateCustomerRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info,omitempty"`
}

// CustomerWithProductsResponse cliente con sus productos asociados (catálogo).
type CustomerWithProductsResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	ContactInfo string            `json:"contact_info,omitempty"`
	Products    []ProductResponse `json:"products"`
}

// CreateProductRequest body para POST /products.
type CreateProductRequest struct {
	SKUCode     string `json:"sku_code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProductRequest body para PUT /products/:id.
type UpdateProductRequest struct {
	SKUCode     string `json:"sku_code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          int64     `json:"id"`
	SKUCode     string    `json:"sku_code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCustomerResponse mapea la entidad al DTO.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, ContactInfo: c.ContactInfo}
}

// NewProductResponse mapea la entidad al DTO.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SKUCode:     p.SKUCode,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
