package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/metrics"
)

// InventoryHandler maneja las peticiones HTTP del motor de movimientos.
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List GET /inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Receive godoc
// @Summary      Registrar recepción de stock
// @Description  Crea el pool (cliente, producto) si no existe, suma la cantidad
//
//	y agrega la entrada al historial en la misma transacción.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveStockRequest  true  "customer_id, product_id, quantity, target/safety opcionales"
// @Success      201   {object}  dto.StockPoolResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /inventory [post]
func (h *InventoryHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pool, err := h.uc.Receive(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.MovementsTotal.WithLabelValues("receive").Inc()
	return c.Status(fiber.StatusCreated).JSON(pool)
}

// Update PUT /inventory/:id — ajuste de cantidad y/o umbrales (merge parcial).
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateStockPoolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pool, err := h.uc.UpdateEntry(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.MovementsTotal.WithLabelValues("adjust").Inc()
	return c.JSON(pool)
}

// Delete DELETE /inventory/:id — elimina el pool; el historial queda huérfano.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteEntry(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OkResponse{OK: true})
}

// History GET /inbound-history — historial de entradas, más reciente primero.
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	list, err := h.uc.History(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
