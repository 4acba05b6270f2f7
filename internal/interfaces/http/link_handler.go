package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger/internal/application/catalog"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
)

// LinkHandler maneja la asociación cliente↔producto del catálogo.
type LinkHandler struct {
	uc *catalog.LinkUseCase
}

// NewLinkHandler construye el handler.
func NewLinkHandler(uc *catalog.LinkUseCase) *LinkHandler {
	return &LinkHandler{uc: uc}
}

// Link POST /customers/:id/products/:productId — idempotente.
func (h *LinkHandler) Link(c *fiber.Ctx) error {
	customerID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	productID, err := paramID(c, "productId")
	if err != nil {
		return respondError(c, err)
	}
	created, err := h.uc.Link(customerID, productID)
	if err != nil {
		return respondError(c, err)
	}
	if !created {
		return c.JSON(dto.OkResponse{OK: true, Message: "Already linked"})
	}
	return c.JSON(dto.OkResponse{OK: true})
}

// Unlink DELETE /customers/:id/products/:productId
func (h *LinkHandler) Unlink(c *fiber.Ctx) error {
	customerID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	productID, err := paramID(c, "productId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Unlink(customerID, productID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OkResponse{OK: true})
}

// Products GET /customers/:id/products — productos asociados al cliente.
func (h *LinkHandler) Products(c *fiber.Ctx) error {
	customerID, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.Products(customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
