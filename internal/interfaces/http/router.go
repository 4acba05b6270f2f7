package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/stock-ledger/internal/application/catalog"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/shipping"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *catalog.CustomerUseCase
	ProductUC  *catalog.ProductUseCase
	LinkUC     *catalog.LinkUseCase
	MovementUC *inventory.MovementUseCase
	ShipmentUC *shipping.ShipmentUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Clientes
	customers := app.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Asociación cliente↔producto
	linkHandler := NewLinkHandler(deps.LinkUC)
	customers.Get("/:id/products", linkHandler.Products)
	customers.Post("/:id/products/:productId", linkHandler.Link)
	customers.Delete("/:id/products/:productId", linkHandler.Unlink)

	// Productos
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventario (saldos por cliente/producto)
	inv := app.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.Receive)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Delete("/:id", inventoryHandler.Delete)

	// Historial de entradas (append-only)
	app.Get("/inbound-history/", inventoryHandler.History)

	// Despachos
	shipments := app.Group("/shipments")
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Get("/", shipmentHandler.List)
	shipments.Post("/", shipmentHandler.Create)
	shipments.Post("/batch/", shipmentHandler.CreateBatch)
	shipments.Put("/:id", shipmentHandler.Update)
	shipments.Delete("/:id", shipmentHandler.Delete)
}
