package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/shipping"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/metrics"
)

// ShipmentHandler maneja las peticiones HTTP de despachos y sus reversiones.
type ShipmentHandler struct {
	uc *shipping.ShipmentUseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(uc *shipping.ShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// List GET /shipments
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Despachar un producto
// @Description  Descuenta del pool de origen (stock_source_customer_id o el
//
//	facturado) verificando suficiencia, y crea el despacho en una transacción.
//
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "customer_id, product_id, quantity, shipment_date"
// @Success      201   {object}  dto.ShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /shipments [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shipment, err := h.uc.Ship(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.MovementsTotal.WithLabelValues("ship").Inc()
	return c.Status(fiber.StatusCreated).JSON(shipment)
}

// CreateBatch POST /shipments/batch — lote todo-o-nada; cada línea resuelve su origen.
func (h *ShipmentHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.BatchShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shipments, err := h.uc.ShipBatch(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.MovementsTotal.WithLabelValues("ship_batch").Inc()
	return c.Status(fiber.StatusCreated).JSON(shipments)
}

// Update PUT /shipments/:id — merge parcial; un cambio de cantidad ajusta el pool del facturado.
func (h *ShipmentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shipment, err := h.uc.UpdateShipment(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	metrics.MovementsTotal.WithLabelValues("shipment_edit").Inc()
	return c.JSON(shipment)
}

// Delete DELETE /shipments/:id — elimina y repone el pool del facturado si existe.
func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.DeleteShipment(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	metrics.MovementsTotal.WithLabelValues("shipment_delete").Inc()
	return c.JSON(dto.OkResponse{OK: true})
}
