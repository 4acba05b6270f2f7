package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del ledger, expuestos en /metrics.
var (
	// MovementsTotal cuenta movimientos confirmados por tipo: receive, adjust, ship, ship_batch, shipment_edit, shipment_delete.
	MovementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_movements_total",
		Help: "Movimientos de stock confirmados, por tipo de operación.",
	}, []string{"type"})

	// InsufficientStockTotal cuenta operaciones rechazadas por stock insuficiente.
	InsufficientStockTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_insufficient_stock_total",
		Help: "Operaciones rechazadas por stock insuficiente.",
	})

	// ContentionTotal cuenta operaciones abortadas por contención transitoria (reintentables).
	ContentionTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_contention_total",
		Help: "Operaciones abortadas por conflicto transitorio de concurrencia.",
	})
)
